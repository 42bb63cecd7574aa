package portal

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

var (
	notifySubmitted = Notification{Title: "Success!", Description: "Your thesis record has been submitted."}
	notifyDeleted   = Notification{Title: "Success", Description: "Submission deleted successfully."}

	notifySubmitFailed = Notification{Title: "Error", Description: "Failed to submit thesis record. Please try again.", Variant: VariantDestructive}
	notifyLoadFailed   = Notification{Title: "Error", Description: "Failed to load thesis submissions.", Variant: VariantDestructive}
	notifyDeleteFailed = Notification{Title: "Error", Description: "Failed to delete submission.", Variant: VariantDestructive}
)

func notify(n Notifier, note Notification) {
	if n == nil {
		return
	}
	if note.Variant == "" {
		note.Variant = VariantDefault
	}
	n.Notify(note)
}
