package usecase

import "context"

// IssueCodeInput carries the destination address for a verification code.
type IssueCodeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyCodeInput carries a code submitted for verification.
type VerifyCodeInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// OTPUsecase defines the interface for one-time-code operations.
// The issued code travels only inside the notifier message; it is never
// returned to the caller.
type OTPUsecase interface {
	IssueCode(ctx context.Context, input *IssueCodeInput) error
	VerifyCode(ctx context.Context, input *VerifyCodeInput) error
}
