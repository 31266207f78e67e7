package preview

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name OutcomeRecorder . OutcomeRecorder
type OutcomeRecorder interface {
	PreviewOutcome(outcome string)
}
