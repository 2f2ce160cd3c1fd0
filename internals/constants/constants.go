package constants

// Admin roles
const (
	RoleCore = "core"
	RoleLead = "lead"
)

// Access levels returned on admin login
const (
	AccessFull    = "full"
	AccessLead    = "lead"
	AccessLimited = "limited"
)

// Registration lifecycle
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

var RegistrationStatuses = []string{StatusPending, StatusConfirmed, StatusCancelled}

func IsValidRegistrationStatus(s string) bool {
	for _, v := range RegistrationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Participant categories on events
const (
	ParticipantMen        = "men"
	ParticipantWomen      = "women"
	ParticipantMenAndWomen = "men & women"
	ParticipantNoCategory = "no category"
)
