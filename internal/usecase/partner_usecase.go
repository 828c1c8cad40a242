package usecase

import (
	"context"

	"getlife/internal/domain/entity"
)

// ApplyInput defines the data a prospective mitra submits.
type ApplyInput struct {
	Email     string
	Name      string
	Phone     string
	Address   string
	Expertise entity.ServiceKind
	Reason    string
	IDPhoto   string
}

// PartnerUsecase covers the mitra application workflow and the login
// denylist, both admin-reviewed.
type PartnerUsecase interface {
	// Apply files a pending application.
	Apply(ctx context.Context, input ApplyInput) (*entity.PartnerApplication, error)

	// ListApplications returns every application for admin review.
	ListApplications(ctx context.Context) ([]entity.PartnerApplication, error)

	// Review decides a pending application. Approval also promotes the
	// applicant's profile to verified.
	Review(ctx context.Context, id string, approve bool) error

	// Block puts the email on the denylist, barring mitra login.
	Block(ctx context.Context, email string) error

	// Unblock removes the email from the denylist.
	Unblock(ctx context.Context, email string) error

	// ListBlocked returns the denylisted emails.
	ListBlocked(ctx context.Context) ([]string, error)
}
