package entity

// PermissionState is the platform notification permission. Transitions happen
// only through the platform prompt; the application reads, never forces, it.
type PermissionState string

const (
	PermissionDefault PermissionState = "default"
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
)

// ParsePermissionState maps a configured string onto a PermissionState,
// treating anything unrecognized as the undecided default.
func ParsePermissionState(s string) PermissionState {
	switch PermissionState(s) {
	case PermissionGranted:
		return PermissionGranted
	case PermissionDenied:
		return PermissionDenied
	default:
		return PermissionDefault
	}
}
