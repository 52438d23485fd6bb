package contenting

import (
	"context"

	"github.com/vfg2006/exterior-marketing/internal/domain"
)

// Randomizer é a fonte de sorteio usada na escolha de templates e valores
type Randomizer interface {
	IntN(n int) int
}

// ContentGenerator gera posts e e-mails. Nenhuma operação de geração retorna erro:
// falhas resultam no texto de contingência com GeneratedContent.Degraded ligado.
type ContentGenerator interface {
	// GenerateInstagramPost gera um post do tipo informado (ou sorteado, para auto)
	GenerateInstagramPost(ctx context.Context, season domain.Season, contentType domain.ContentType) *domain.GeneratedContent

	// BuildEmailReply gera a resposta automática para um pedido de contato
	BuildEmailReply(ctx context.Context, season domain.Season, inquiry domain.InquiryRequest) *domain.GeneratedContent

	// BuildFollowUpEmail gera o e-mail de acompanhamento após a visita
	BuildFollowUpEmail(ctx context.Context, season domain.Season, inquiry domain.InquiryRequest) *domain.GeneratedContent

	// SuggestCampaign sorteia uma campanha da estação
	SuggestCampaign(season domain.Season) string

	// ListRecent retorna o histórico de conteúdos gerados, quando habilitado
	ListRecent(ctx context.Context, kind domain.ContentKind, limit int) ([]*domain.GeneratedContent, error)
}
