package payload

import (
	"fmt"
	"memoarc/internal/core"
	"regexp"
	"unicode/utf16"

	"github.com/jellydator/validation"
)

var gmailAddress = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s SignupRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email, validation.Required, validation.Match(gmailAddress)),
		validation.Field(&s.Username, validation.Required, utf16Length(3, 10)),
		validation.Field(&s.Password, validation.Required, utf16Length(6, 20)),
	)
}

// utf16Length bounds a string by UTF-16 code units, which caps a 20 unit
// password at 60 bytes, inside bcrypt's 72 byte limit.
func utf16Length(min, max int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if n := len(utf16.Encode([]rune(s))); n < min || n > max {
			return validation.NewError("validation_length_out_of_range",
				fmt.Sprintf("the length must be between %d and %d", min, max))
		}
		return nil
	})
}

func (s SignupRequest) ToMessage() core.SignupMessage {
	return core.SignupMessage{
		Email:    s.Email,
		Username: s.Username,
		Password: s.Password,
	}
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s SigninRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email, validation.Required),
		validation.Field(&s.Password, validation.Required),
	)
}

func (s SigninRequest) ToMessage() core.SigninMessage {
	return core.SigninMessage{
		Email:    s.Email,
		Password: s.Password,
	}
}
