package contenting

import (
	"fmt"
	"strings"
)

// Field é o nome de um placeholder. Só os campos de AllFields são substituídos.
type Field string

const (
	FieldArea            Field = "area"
	FieldService         Field = "service"
	FieldSeasonName      Field = "season_name"
	FieldSeasonalMessage Field = "seasonal_message"
	FieldProposal        Field = "proposal"
	FieldReview          Field = "review"
	FieldSignature       Field = "signature"
	FieldCustomerName    Field = "customer_name"
	FieldInquiryContent  Field = "inquiry_content"
	FieldCampaign        Field = "campaign"
	FieldAvailableDates  Field = "available_dates"
	FieldContactPhone    Field = "contact_phone"
)

// AllFields é o conjunto fechado de placeholders conhecidos
var AllFields = []Field{
	FieldArea,
	FieldService,
	FieldSeasonName,
	FieldSeasonalMessage,
	FieldProposal,
	FieldReview,
	FieldSignature,
	FieldCustomerName,
	FieldInquiryContent,
	FieldCampaign,
	FieldAvailableDates,
	FieldContactPhone,
}

var knownFields = make(map[Field]struct{}, len(AllFields))

func init() {
	if err := ValidateFields(AllFields); err != nil {
		panic(err)
	}
	for _, field := range AllFields {
		knownFields[field] = struct{}{}
	}
}

// Values associa cada campo ao seu valor
type Values map[Field]string

// Token retorna o placeholder como aparece no template: {name}
func (f Field) Token() string {
	return "{" + string(f) + "}"
}

// ValidateFields garante que nenhum nome de campo é substring de outro
// e que nenhum nome é vazio ou contém chaves.
func ValidateFields(fields []Field) error {
	for i, a := range fields {
		if a == "" || strings.ContainsAny(string(a), "{}") {
			return fmt.Errorf("contenting: nome de campo inválido: %q", a)
		}
		for j, b := range fields {
			if i == j {
				continue
			}
			if strings.Contains(string(b), string(a)) {
				return fmt.Errorf("contenting: campo %q é substring de %q", a, b)
			}
		}
	}
	return nil
}

// Fill substitui os placeholders {field} do template em uma única passada.
// Tokens desconhecidos ou sem valor ficam intactos e os valores inseridos
// não são reprocessados, então a ordem dos campos não importa.
func Fill(template string, values Values) string {
	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}

		end := strings.IndexByte(rest[open+1:], '}')
		if end < 0 {
			b.WriteString(rest)
			break
		}

		name := Field(rest[open+1 : open+1+end])
		value, ok := values[name]
		if _, known := knownFields[name]; !known || !ok {
			b.WriteString(rest[:open+1])
			rest = rest[open+1:]
			continue
		}

		b.WriteString(rest[:open])
		b.WriteString(value)
		rest = rest[open+end+2:]
	}

	return b.String()
}

// UnresolvedFields lista os campos conhecidos que ainda aparecem em text
func UnresolvedFields(text string) []Field {
	var unresolved []Field
	for _, field := range AllFields {
		if strings.Contains(text, field.Token()) {
			unresolved = append(unresolved, field)
		}
	}
	return unresolved
}

// TemplateFields lista os campos conhecidos usados por um template
func TemplateFields(template string) []Field {
	return UnresolvedFields(template)
}
