package onboarding

// NotificationKind selects the toast styling.
type NotificationKind int

const (
	KindNone NotificationKind = iota
	KindSuccess
)

// Notification is a transient, auto-dismissing message raised by a
// transition. The zero value means "nothing to show".
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
}

// Success builds a success toast.
func Success(title, description string) Notification {
	return Notification{Kind: KindSuccess, Title: title, Description: description}
}

// Empty reports whether there is nothing to show.
func (n Notification) Empty() bool {
	return n.Kind == KindNone && n.Title == ""
}
