package email

import (
	"context"

	"github.com/openarchief/vernietiging/pkg/domain/types"
)

// Service sends the automatic workflow emails. Implementations resolve the
// template for the email type, expand it with the list context and deliver
// it to the recipient address.
type Service interface {
	Send(ctx context.Context, emailType types.EmailType, to string, data ListContext) error
}

// ListContext is the data available to email templates
type ListContext struct {
	ListName      string
	ListURL       string
	RecipientName string
	AuthorName    string
	DaysOverdue   int
}

// Template is a subject and body pair. Both are text/template sources over
// ListContext.
type Template struct {
	Subject string
	Body    string
}
