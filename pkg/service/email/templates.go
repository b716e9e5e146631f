package email

import "github.com/openarchief/vernietiging/pkg/domain/types"

var defaultTemplates = map[types.EmailType]Template{
	types.EmailTypeReviewRequired: {
		Subject: "Destruction list {{.ListName}} requires your review",
		Body: `Dear {{.RecipientName}},

The destruction list "{{.ListName}}" has been assigned to you for review.

{{.ListURL}}
`,
	},
	types.EmailTypeChangesRequired: {
		Subject: "Changes requested on destruction list {{.ListName}}",
		Body: `Dear {{.RecipientName}},

A reviewer has requested changes to the destruction list "{{.ListName}}".

{{.ListURL}}
`,
	},
	types.EmailTypeReportAvailable: {
		Subject: "Destruction report for {{.ListName}} is available",
		Body: `Dear {{.RecipientName}},

The destruction list "{{.ListName}}" has been processed. The destruction
report is available for download.

{{.ListURL}}
`,
	},
	types.EmailTypeReviewReminder: {
		Subject: "Reminder: destruction list {{.ListName}} awaits your review",
		Body: `Dear {{.RecipientName}},

The destruction list "{{.ListName}}" has been waiting for your review for
{{.DaysOverdue}} days.

{{.ListURL}}
`,
	},
}
