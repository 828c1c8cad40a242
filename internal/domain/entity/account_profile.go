package entity

// AccountProfile is the merged view of an account and its profile, as
// resolved for the current session. Profile fields win on collision,
// so Role and Email come from the profile record. The password is kept
// for completeness of the merge but never serialized.
type AccountProfile struct {
	Email     string        `json:"email"`
	Password  string        `json:"-"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone,omitempty"`
	Address   string        `json:"address,omitempty"`
	Role      Role          `json:"role"`
	Status    ProfileStatus `json:"status"`
	Balance   int           `json:"saldo"`
	Expertise ServiceKind   `json:"expertise,omitempty"`
}

// Merge combines an account with its profile into the session view.
func Merge(account Account, profile Profile) *AccountProfile {
	return &AccountProfile{
		Email:     profile.Email,
		Password:  account.Password,
		Name:      profile.Name,
		Phone:     profile.Phone,
		Address:   profile.Address,
		Role:      profile.Role,
		Status:    profile.Status,
		Balance:   profile.Balance,
		Expertise: profile.Expertise,
	}
}
