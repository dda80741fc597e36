package gate

// storage field names, combined with the subject prefix by Key
const (
	fieldTime      = "nudge_time"
	fieldDismissed = "nudge_dismissed"
)

// Key derives the storage key for a subject field
func Key(prefix, field string) string {
	return prefix + "_" + field
}
