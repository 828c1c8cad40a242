package entity

import "time"

// ApplicationStatus is the admin decision state of a mitra application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// String returns the string representation of the ApplicationStatus.
func (s ApplicationStatus) String() string {
	return string(s)
}

// PartnerApplication is a mitra's request to join the platform. The
// applicant email links the application back to the account/profile
// pair so an approval can promote the profile to "verified".
type PartnerApplication struct {
	ID        string            `json:"id" firestore:"id"`
	Email     string            `json:"email" firestore:"email"`
	Name      string            `json:"nama" firestore:"nama"`
	Phone     string            `json:"phone" firestore:"phone"`
	Address   string            `json:"address" firestore:"address"`
	Expertise ServiceKind       `json:"expertise" firestore:"expertise"`
	Reason    string            `json:"reason" firestore:"reason"`
	IDPhoto   string            `json:"ktpPhoto,omitempty" firestore:"ktpPhoto,omitempty"`
	Status    ApplicationStatus `json:"status" firestore:"status"`
	CreatedAt time.Time         `json:"createdAt" firestore:"createdAt"`
}

// ApplicationPatch lists the mutable application fields.
type ApplicationPatch struct {
	Status *ApplicationStatus
}

// Apply overwrites the application's fields with the patch's non-nil values.
func (p ApplicationPatch) Apply(application *PartnerApplication) {
	if p.Status != nil {
		application.Status = *p.Status
	}
}
