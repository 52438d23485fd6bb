package domain

import "time"

// ContentType é o tipo de post do Instagram
type ContentType string

const (
	ContentTypeAuto        ContentType = "auto"
	ContentTypeShowcase    ContentType = "施工事例"
	ContentTypeProposal    ContentType = "季節提案"
	ContentTypeTestimonial ContentType = "お客様の声"
)

// ContentTypes lista os tipos concretos, na ordem usada pelo sorteio do modo auto
var ContentTypes = []ContentType{ContentTypeShowcase, ContentTypeProposal, ContentTypeTestimonial}

// ParseContentType aceita tanto o nome japonês quanto os apelidos em inglês
func ParseContentType(value string) (ContentType, bool) {
	switch value {
	case "", string(ContentTypeAuto):
		return ContentTypeAuto, true
	case string(ContentTypeShowcase), "showcase":
		return ContentTypeShowcase, true
	case string(ContentTypeProposal), "seasonal-proposal", "proposal":
		return ContentTypeProposal, true
	case string(ContentTypeTestimonial), "testimonial":
		return ContentTypeTestimonial, true
	}
	return ContentType(value), false
}

// ContentKind diferencia posts de e-mails
type ContentKind string

const (
	ContentKindInstagramPost ContentKind = "instagram_post"
	ContentKindInquiryReply  ContentKind = "inquiry_reply"
	ContentKindFollowUp      ContentKind = "follow_up"
)

// GeneratedContent é o resultado de toda geração de conteúdo.
// Degraded indica que Body é o texto de contingência e FailureReason explica o motivo.
type GeneratedContent struct {
	ID            string      `json:"id"`
	Kind          ContentKind `json:"kind"`
	ContentType   ContentType `json:"content_type,omitempty"`
	Season        SeasonName  `json:"season"`
	Body          string      `json:"body"`
	Degraded      bool        `json:"degraded"`
	FailureReason string      `json:"failure_reason,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
