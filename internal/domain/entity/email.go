package entity

// OutgoingEmail is a rendered HTML message ready for a mail transport
type OutgoingEmail struct {
	FromName    string
	FromAddress string
	To          string
	Subject     string
	HTMLBody    string
}
