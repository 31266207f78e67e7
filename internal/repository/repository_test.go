package repository_test

import (
	"context"
	"errors"
	"memoarc/internal/db"
	"memoarc/internal/repository"
	"memoarc/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BookmarkRepository", func() {
	var (
		repo        *repository.BookmarkRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewBookmarkRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate every model", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Content{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.ShareLink{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, repository.User{
				Username:     "alice",
				Email:        "alice@gmail.com",
				PasswordHash: "hash",
			})
		})

		When("insert succeeds", func() {
			It("should assign an id and store the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(user.ID)).To(Succeed())
				Expect(user.CreatedAt).NotTo(BeZero())

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				stored, ok := record.(*repository.User)
				Expect(ok).To(BeTrue())
				Expect(stored.Email).To(Equal("alice@gmail.com"))
			})
		})

		When("email is taken", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(&db.DuplicateKeyError{Constraint: "idx_users_email"})
			})

			It("should report the email field", func() {
				var dupErr *repository.DuplicateFieldError
				Expect(errors.As(err, &dupErr)).To(BeTrue())
				Expect(dupErr.Field).To(Equal("email"))
				Expect(err).To(MatchError(db.ErrDuplicateKey))
			})
		})

		When("username is taken", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(&db.DuplicateKeyError{Constraint: "idx_users_username"})
			})

			It("should report the username field", func() {
				var dupErr *repository.DuplicateFieldError
				Expect(errors.As(err, &dupErr)).To(BeTrue())
				Expect(dupErr.Field).To(Equal("username"))
			})
		})

		When("an unknown constraint is violated", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(&db.DuplicateKeyError{Constraint: "users_pkey"})
			})

			It("should report a duplicate without a field", func() {
				var dupErr *repository.DuplicateFieldError
				Expect(errors.As(err, &dupErr)).To(BeTrue())
				Expect(dupErr.Field).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(db.ErrDuplicateKey))
			})
		})
	})

	Describe("GetUserByEmail", func() {
		var (
			user     repository.User
			err      error
			testUser repository.User
		)

		BeforeEach(func() {
			testUser = repository.User{
				ID:           uuid.NewString(),
				Username:     "alice",
				Email:        "alice@gmail.com",
				PasswordHash: "hashed_password",
			}
		})

		JustBeforeEach(func() {
			user, err = repo.GetUserByEmail(ctx, testUser.Email)
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					user := dest.(*repository.User)
					*user = testUser
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(testUser))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("email"))
				Expect(val).To(Equal(testUser.Email))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByID", func() {
		It("should look the user up by id", func() {
			_, err := repo.GetUserByID(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())

			_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(col).To(Equal("id"))
			Expect(val).To(Equal("user-1"))
		})
	})

	Describe("CreateContent", func() {
		var (
			content repository.Content
			err     error
		)

		JustBeforeEach(func() {
			content, err = repo.CreateContent(ctx, repository.Content{
				Link:    "https://example.com",
				Type:    "article",
				OwnerID: "user-1",
			})
		})

		When("insert succeeds", func() {
			It("should store content with empty tags", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(content.ID).NotTo(BeEmpty())
				Expect(content.Tags).To(BeEmpty())
				Expect(content.Tags).NotTo(BeNil())
				Expect(content.OwnerID).To(Equal("user-1"))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetContentByOwner", func() {
		var (
			contents []repository.Content
			err      error
		)

		JustBeforeEach(func() {
			contents, err = repo.GetContentByOwner(ctx, "user-1")
		})

		When("owner has content", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					items := dest.(*[]repository.Content)
					*items = []repository.Content{{ID: "c1"}, {ID: "c2"}}
					return nil
				}
			})

			It("should return the content", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(contents).To(HaveLen(2))

				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("owner_id"))
				Expect(val).To(Equal("user-1"))
			})
		})

		When("owner has no content", func() {
			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(contents).NotTo(BeNil())
				Expect(contents).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteContent", func() {
		When("delete succeeds", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(1, nil)
			})

			It("should filter by content id and owner", func() {
				n, err := repo.DeleteContent(ctx, "c1", "user-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(int64(1)))

				_, model, conds := fakeStorage.DeleteByArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Content{}))
				Expect(conds).To(Equal(map[string]any{"id": "c1", "owner_id": "user-1"}))
			})
		})

		When("delete fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(0, fakeErr)
			})

			It("should return the error", func() {
				_, err := repo.DeleteContent(ctx, "c1", "user-1")
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ShareLink", func() {
		Describe("GetShareLinkByHash", func() {
			When("hash is unknown", func() {
				BeforeEach(func() {
					fakeStorage.GetOneByReturns(db.ErrNotFound)
				})

				It("should return share link not found", func() {
					_, err := repo.GetShareLinkByHash(ctx, "abc")
					Expect(err).To(MatchError(repository.ErrShareLinkNotFound))

					_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
					Expect(col).To(Equal("hash"))
					Expect(val).To(Equal("abc"))
				})
			})
		})

		Describe("GetShareLinkByOwner", func() {
			When("owner has a link", func() {
				BeforeEach(func() {
					fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
						link := dest.(*repository.ShareLink)
						*link = repository.ShareLink{Hash: "abc", OwnerID: "user-1"}
						return nil
					}
				})

				It("should return it", func() {
					link, err := repo.GetShareLinkByOwner(ctx, "user-1")
					Expect(err).NotTo(HaveOccurred())
					Expect(link.Hash).To(Equal("abc"))

					_, col, _, _ := fakeStorage.GetOneByArgsForCall(0)
					Expect(col).To(Equal("owner_id"))
				})
			})
		})

		Describe("CreateShareLink", func() {
			When("insert succeeds", func() {
				It("should persist the link", func() {
					link, err := repo.CreateShareLink(ctx, "user-1", "abc")
					Expect(err).NotTo(HaveOccurred())
					Expect(link.Hash).To(Equal("abc"))
					Expect(link.OwnerID).To(Equal("user-1"))
					Expect(link.ID).NotTo(BeEmpty())
				})
			})

			When("owner already has a link", func() {
				BeforeEach(func() {
					fakeStorage.CreateReturns(&db.DuplicateKeyError{Constraint: "idx_share_links_owner_id"})
				})

				It("should report the owner field", func() {
					_, err := repo.CreateShareLink(ctx, "user-1", "abc")
					var dupErr *repository.DuplicateFieldError
					Expect(errors.As(err, &dupErr)).To(BeTrue())
					Expect(dupErr.Field).To(Equal("owner"))
				})
			})
		})

		Describe("DeleteShareLink", func() {
			It("should delete by owner", func() {
				_, err := repo.DeleteShareLink(ctx, "user-1")
				Expect(err).NotTo(HaveOccurred())

				_, model, conds := fakeStorage.DeleteByArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.ShareLink{}))
				Expect(conds).To(Equal(map[string]any{"owner_id": "user-1"}))
			})
		})
	})
})
