package dto

// ItemForm carries the fields of the new-item and edit-item HTML forms.
// Both fields are optional; a blank title falls back to the default in
// the application layer.
type ItemForm struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

// FeedbackForm carries the fields of the guestbook form. A blank
// message is not an error at this layer; the handler decides what to
// do with it.
type FeedbackForm struct {
	Name    string `form:"name"`
	Message string `form:"message"`
}
