package entity

// ProfileStatus is the vetting state of a profile. Only mitra accounts
// are gated on it at login time; "blocked" is tracked separately in the
// denylist and the status value is informational for dashboards.
type ProfileStatus string

const (
	// ProfileActive is the status every profile starts with.
	ProfileActive ProfileStatus = "active"
	// ProfileVerified is granted by an admin and is required before a
	// mitra may log in.
	ProfileVerified ProfileStatus = "verified"
	// ProfileBlocked marks a profile whose email is on the denylist.
	ProfileBlocked ProfileStatus = "blocked"
)

// String returns the string representation of the ProfileStatus.
func (s ProfileStatus) String() string {
	return string(s)
}

// Profile holds the presentation and wallet data for an account,
// keyed 1:1 by the account email. The balance keeps its original wire
// name "saldo" so both backends stay compatible with existing data.
type Profile struct {
	Email     string        `json:"email" firestore:"email"`
	Name      string        `json:"name" firestore:"name"`
	Phone     string        `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address   string        `json:"address,omitempty" firestore:"address,omitempty"`
	Role      Role          `json:"role" firestore:"role"`
	Status    ProfileStatus `json:"status" firestore:"status"`
	Balance   int           `json:"saldo" firestore:"saldo"`
	Expertise ServiceKind   `json:"expertise,omitempty" firestore:"expertise,omitempty"`
}

// ProfilePatch lists exactly the mutable profile fields. A nil field is
// left untouched by an update.
type ProfilePatch struct {
	Name      *string
	Phone     *string
	Address   *string
	Status    *ProfileStatus
	Balance   *int
	Expertise *ServiceKind
}

// Apply overwrites the profile's fields with the patch's non-nil values.
func (p ProfilePatch) Apply(profile *Profile) {
	if p.Name != nil {
		profile.Name = *p.Name
	}
	if p.Phone != nil {
		profile.Phone = *p.Phone
	}
	if p.Address != nil {
		profile.Address = *p.Address
	}
	if p.Status != nil {
		profile.Status = *p.Status
	}
	if p.Balance != nil {
		profile.Balance = *p.Balance
	}
	if p.Expertise != nil {
		profile.Expertise = *p.Expertise
	}
}
