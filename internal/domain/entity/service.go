package entity

// ServiceKind identifies one of the home services offered on the
// platform.
type ServiceKind string

const (
	ServiceClean   ServiceKind = "GetClean"
	ServiceMassage ServiceKind = "GetMassage"
	ServiceBarber  ServiceKind = "GetBarber"
)

// String returns the string representation of the ServiceKind.
func (s ServiceKind) String() string {
	return string(s)
}

// IsValid checks if the ServiceKind is a valid value.
func (s ServiceKind) IsValid() bool {
	switch s {
	case ServiceClean, ServiceMassage, ServiceBarber:
		return true
	default:
		return false
	}
}
