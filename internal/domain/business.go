package domain

import "fmt"

// BusinessProfile são os dados da empresa usados nos textos gerados
type BusinessProfile struct {
	CompanyName  string   `json:"company_name"`
	StaffName    string   `json:"staff_name"`
	TargetAreas  []string `json:"target_areas"`
	Services     []string `json:"services"`
	ContactEmail string   `json:"contact_email"`
	ContactPhone string   `json:"contact_phone"`
}

// PostSignature é a assinatura curta usada nos posts
func (b BusinessProfile) PostSignature() string {
	return fmt.Sprintf("%s\n担当: %s\n電話: %s", b.CompanyName, b.StaffName, b.ContactPhone)
}

// EmailSignature é a assinatura completa usada nos e-mails
func (b BusinessProfile) EmailSignature() string {
	return fmt.Sprintf("%s\n担当: %s\nメール: %s\n電話: %s", b.CompanyName, b.StaffName, b.ContactEmail, b.ContactPhone)
}
