package contenting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/exterior-marketing/infrastructure/repository"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/vfg2006/exterior-marketing/pkg/log"
	"github.com/vfg2006/exterior-marketing/pkg/utils"
)

const (
	firstAvailableDay  = 3
	lastAvailableDay   = 9
	maxAvailableDates  = 5
	availableTimeRange = "9:00-17:00"
)

// ErrHistoryDisabled indica que o histórico não foi configurado
var ErrHistoryDisabled = errors.New("histórico de conteúdos desabilitado")

var _ ContentGenerator = (*Service)(nil)

type Service struct {
	business          domain.BusinessProfile
	random            Randomizer
	now               func() time.Time
	contentRepository repository.ContentRepository
	useHistory        bool
}

func NewService(business domain.BusinessProfile, random Randomizer) *Service {
	return &Service{
		business: business,
		random:   random,
		now:      time.Now,
	}
}

// WithHistory habilita a persistência dos conteúdos gerados
func (s *Service) WithHistory(contentRepo repository.ContentRepository) *Service {
	s.contentRepository = contentRepo
	s.useHistory = contentRepo != nil
	return s
}

// WithClock substitui o relógio usado nas datas dos e-mails
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GenerateInstagramPost(ctx context.Context, season domain.Season, contentType domain.ContentType) *domain.GeneratedContent {
	content := s.newContent(ctx, domain.ContentKindInstagramPost, season)
	content.ContentType = contentType

	s.generate(ctx, content, func() string { return s.FallbackPost(season) }, func() (string, error) {
		template, chosenType, err := SelectTemplate(contentType, s.random)
		content.ContentType = chosenType
		if err != nil {
			return "", err
		}

		values, err := s.postValues(season)
		if err != nil {
			return "", NewContentError(err, string(chosenType), "erro ao sortear valores do template")
		}

		return fillStrict(template, values, string(chosenType))
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"content_type": content.ContentType,
		"season":       content.Season,
		"degraded":     content.Degraded,
	}).Info("📱 Post do Instagram gerado")

	s.save(ctx, content)
	return content
}

func (s *Service) BuildEmailReply(ctx context.Context, season domain.Season, inquiry domain.InquiryRequest) *domain.GeneratedContent {
	content := s.newContent(ctx, domain.ContentKindInquiryReply, season)
	inquiry = inquiry.WithDefaults()

	s.generate(ctx, content, func() string { return fallbackReply }, func() (string, error) {
		campaign, err := pick(s.random, season.Campaigns)
		if err != nil {
			return "", NewContentError(err, string(content.Kind), "estação sem campanhas")
		}

		values := Values{
			FieldCustomerName:   inquiry.Name,
			FieldService:        inquiry.Service,
			FieldInquiryContent: inquiry.Content,
			FieldCampaign:       campaign,
			FieldAvailableDates: FormatAvailableDates(AvailableDates(s.now())),
			FieldSignature:      s.business.EmailSignature(),
		}

		return fillStrict(inquiryReplyTemplate, values, string(content.Kind))
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"customer": inquiry.Name,
		"degraded": content.Degraded,
	}).Info("✉️ Resposta automática gerada")

	s.save(ctx, content)
	return content
}

func (s *Service) BuildFollowUpEmail(ctx context.Context, season domain.Season, inquiry domain.InquiryRequest) *domain.GeneratedContent {
	content := s.newContent(ctx, domain.ContentKindFollowUp, season)
	inquiry = inquiry.WithDefaults()

	s.generate(ctx, content, func() string { return fallbackReply }, func() (string, error) {
		values := Values{
			FieldCustomerName:    inquiry.Name,
			FieldService:         inquiry.Service,
			FieldSeasonalMessage: season.SeasonalMessage(),
			FieldSignature:       s.business.EmailSignature(),
		}

		return fillStrict(followUpTemplate, values, string(content.Kind))
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"customer": inquiry.Name,
		"degraded": content.Degraded,
	}).Info("✉️ E-mail de acompanhamento gerado")

	s.save(ctx, content)
	return content
}

func (s *Service) SuggestCampaign(season domain.Season) string {
	campaign, err := pick(s.random, season.Campaigns)
	if err != nil {
		return ""
	}
	return campaign
}

func (s *Service) ListRecent(ctx context.Context, kind domain.ContentKind, limit int) ([]*domain.GeneratedContent, error) {
	if !s.useHistory {
		return nil, ErrHistoryDisabled
	}
	return s.contentRepository.ListRecent(ctx, kind, limit)
}

// FallbackPost é o post genérico usado quando a geração falha
func (s *Service) FallbackPost(season domain.Season) string {
	return Fill(fallbackPostTemplate, Values{
		FieldSeasonName:   string(season.Name),
		FieldContactPhone: s.business.ContactPhone,
	})
}

func (s *Service) postValues(season domain.Season) (Values, error) {
	area, err := pick(s.random, s.business.TargetAreas)
	if err != nil {
		return nil, err
	}

	service, err := pick(s.random, s.business.Services)
	if err != nil {
		return nil, err
	}

	proposal, err := pick(s.random, season.Services)
	if err != nil {
		return nil, err
	}

	review, err := pick(s.random, customerReviews)
	if err != nil {
		return nil, err
	}

	return Values{
		FieldArea:            area,
		FieldService:         service,
		FieldSeasonName:      string(season.Name),
		FieldSeasonalMessage: season.SeasonalMessage(),
		FieldProposal:        proposal,
		FieldReview:          review,
		FieldSignature:       s.business.PostSignature(),
	}, nil
}

func (s *Service) newContent(ctx context.Context, kind domain.ContentKind, season domain.Season) *domain.GeneratedContent {
	id, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gerar ID do conteúdo")
	}

	return &domain.GeneratedContent{
		ID:        id,
		Kind:      kind,
		Season:    season.Name,
		CreatedAt: s.now(),
	}
}

// generate executa build e, em caso de erro ou pânico, usa o texto de contingência
func (s *Service) generate(ctx context.Context, content *domain.GeneratedContent, fallback func() string, build func() (string, error)) {
	defer func() {
		if r := recover(); r != nil {
			s.degrade(ctx, content, fmt.Errorf("%w: %v", ErrGenerationPanic, r), fallback())
		}
	}()

	body, err := build()
	if err != nil {
		s.degrade(ctx, content, err, fallback())
		return
	}

	content.Body = body
}

func (s *Service) degrade(ctx context.Context, content *domain.GeneratedContent, err error, fallback string) {
	log.ForContext(ctx).WithError(err).WithField("content_kind", content.Kind).Warn("Erro na geração de conteúdo, usando texto de contingência")

	content.Body = fallback
	content.Degraded = true
	content.FailureReason = err.Error()
}

func (s *Service) save(ctx context.Context, content *domain.GeneratedContent) {
	if !s.useHistory {
		return
	}

	if err := s.contentRepository.Save(ctx, content); err != nil {
		log.ForContext(ctx).WithError(err).WithField("content_id", content.ID).Warn("Erro ao salvar conteúdo no histórico")
	}
}

// SelectTemplate sorteia um template do tipo informado. Para auto, o tipo também é sorteado.
func SelectTemplate(contentType domain.ContentType, random Randomizer) (string, domain.ContentType, error) {
	if contentType == domain.ContentTypeAuto || contentType == "" {
		chosen, err := pick(random, domain.ContentTypes)
		if err != nil {
			return "", contentType, err
		}
		contentType = chosen
	}

	templates, ok := postTemplates[contentType]
	if !ok {
		return "", contentType, NewContentError(ErrUnknownContentType, string(contentType), "")
	}

	template, err := pick(random, templates)
	if err != nil {
		return "", contentType, NewContentError(ErrNoTemplates, string(contentType), "")
	}

	return template, contentType, nil
}

// AvailableDates retorna até cinco dias úteis entre 3 e 9 dias após from
func AvailableDates(from time.Time) []time.Time {
	dates := make([]time.Time, 0, maxAvailableDates)
	for i := firstAvailableDay; i <= lastAvailableDay && len(dates) < maxAvailableDates; i++ {
		date := from.AddDate(0, 0, i)
		if utils.IsWeekday(date) {
			dates = append(dates, date)
		}
	}
	return dates
}

// FormatAvailableDates monta a lista de horários de visita usada no e-mail
func FormatAvailableDates(dates []time.Time) string {
	lines := make([]string, len(dates))
	for i, date := range dates {
		lines[i] = fmt.Sprintf("・%s %s", utils.FormatJapaneseDate(date), availableTimeRange)
	}
	return strings.Join(lines, "\n")
}

// fillStrict falha se algum campo usado pelo template não tiver valor
func fillStrict(template string, values Values, contentType string) (string, error) {
	var missing []Field
	for _, field := range TemplateFields(template) {
		if _, ok := values[field]; !ok {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return "", NewContentError(ErrUnresolvedField, contentType, fmt.Sprintf("%v", missing))
	}

	return Fill(template, values), nil
}

func pick[T any](random Randomizer, choices []T) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, ErrEmptyChoices
	}
	return choices[random.IntN(len(choices))], nil
}
