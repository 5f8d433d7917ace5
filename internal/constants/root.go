package constants

// SessionState represents the current state of the TUI application
type SessionState int

// PermissionType is one of the server's permission-type activity values
type PermissionType string

// FormKind distinguishes the draft namespaces kept per employee
type FormKind string

const (
	AppName            = "horas"
	DefaultKeyringUser = "login-credentials"
	DefaultStorePath   = "~/.config/horas/horas.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MaxHoursPerDay is the upper bound the server accepts for a single entry
	MaxHoursPerDay = 24

	// MinNoteLength is the minimum justification length for permission requests
	MinNoteLength = 5

	// Reserved taxonomy for permission requests. These are server-controlled
	// catalog keys, not display strings.
	PermissionProjectCode = "IB-INTERNO"
	PermissionPhase       = "PERMISOS"
	PermissionDiscipline  = "PERMISOS"
	DefaultPermissionHrs  = "8"

	// Permission types (the activity field of a permission entry)
	PermissionPaid    PermissionType = "PERMISO_REMUNERADO"
	PermissionUnpaid  PermissionType = "PERMISO_NO_REMUNERADO"
	PermissionMedical PermissionType = "PERMISO_MEDICO"
	PermissionOther   PermissionType = "OTRO"

	// Draft namespaces
	FormHours       FormKind = "hours"
	FormPermissions FormKind = "permissions"
)

// Session states
const (
	StateLogin SessionState = iota
	StateHours
	StatePermissions
	StateReport
	StateEditing
	StateConfirmDelete
)

// PermissionTypes lists the selectable permission types in display order.
var PermissionTypes = []PermissionType{
	PermissionPaid,
	PermissionUnpaid,
	PermissionMedical,
	PermissionOther,
}

// PermissionTypeLabel returns the human-readable label for a permission type.
func PermissionTypeLabel(t PermissionType) string {
	switch t {
	case PermissionPaid:
		return "Permiso Remunerado"
	case PermissionUnpaid:
		return "Permiso No Remunerado"
	case PermissionMedical:
		return "Permiso Médico"
	case PermissionOther:
		return "Otro"
	default:
		return string(t)
	}
}
