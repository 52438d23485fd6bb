package domain

import "strings"

const (
	DefaultInquiryName    = "お客様"
	DefaultInquiryService = "外構工事"
	DefaultInquiryContent = "お問い合わせ"
)

// InquiryRequest é o pedido de contato de um cliente. Todos os campos são opcionais.
type InquiryRequest struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Content string `json:"content"`
}

// WithDefaults preenche os campos vazios com os textos genéricos
func (i InquiryRequest) WithDefaults() InquiryRequest {
	if strings.TrimSpace(i.Name) == "" {
		i.Name = DefaultInquiryName
	}
	if strings.TrimSpace(i.Service) == "" {
		i.Service = DefaultInquiryService
	}
	if strings.TrimSpace(i.Content) == "" {
		i.Content = DefaultInquiryContent
	}
	return i
}

// SampleInquiry é o pedido usado pela automação diária como exemplo
func SampleInquiry() InquiryRequest {
	return InquiryRequest{
		Name:    "田中太郎",
		Service: "ウッドデッキ設置",
		Content: "庭にウッドデッキを設置したいと考えています。見積もりをお願いします。",
	}
}
