package contenting

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/exterior-marketing/infrastructure/repository/mocks"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/vfg2006/exterior-marketing/pkg/log"
	"go.uber.org/mock/gomock"
)

// fixedRandom sempre escolhe o mesmo índice (limitado ao tamanho da lista)
type fixedRandom struct {
	index int
}

func (r fixedRandom) IntN(n int) int {
	if r.index >= n {
		return n - 1
	}
	return r.index
}

type panicRandom struct{}

func (panicRandom) IntN(int) int {
	panic("fonte aleatória quebrada")
}

func testBusiness() domain.BusinessProfile {
	return domain.BusinessProfile{
		CompanyName:  "エクステリア工房",
		StaffName:    "田中",
		TargetAreas:  []string{"東京", "神奈川", "埼玉", "千葉"},
		Services:     []string{"ウッドデッキ設置", "カーポート工事", "フェンス設置"},
		ContactEmail: "info@exterior-example.com",
		ContactPhone: "090-1234-5678",
	}
}

// 15 de janeiro de 2024 foi uma segunda-feira
var referenceTime = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestService(random Randomizer) *Service {
	return NewService(testBusiness(), random).WithClock(func() time.Time { return referenceTime })
}

func TestSelectTemplate(t *testing.T) {
	template, contentType, err := SelectTemplate(domain.ContentTypeProposal, fixedRandom{index: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.ContentTypeProposal, contentType)
	assert.Equal(t, postTemplates[domain.ContentTypeProposal][1], template)

	_, contentType, err = SelectTemplate(domain.ContentTypeAuto, fixedRandom{index: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.ContentTypeTestimonial, contentType)

	_, _, err = SelectTemplate(domain.ContentType("blog"), fixedRandom{})
	assert.ErrorIs(t, err, ErrUnknownContentType)

	var contentErr *ContentError
	require.True(t, errors.As(err, &contentErr))
	assert.Equal(t, "blog", contentErr.ContentType)
}

func TestService_GenerateInstagramPost(t *testing.T) {
	summer := domain.SeasonForMonth(time.July)

	t.Run("post de obra concluída", func(t *testing.T) {
		service := newTestService(fixedRandom{index: 0})

		content := service.GenerateInstagramPost(context.Background(), summer, domain.ContentTypeShowcase)

		assert.False(t, content.Degraded)
		assert.Empty(t, content.FailureReason)
		assert.Equal(t, domain.ContentKindInstagramPost, content.Kind)
		assert.Equal(t, domain.ContentTypeShowcase, content.ContentType)
		assert.Equal(t, domain.Summer, content.Season)
		assert.NotEmpty(t, content.ID)
		assert.Equal(t, referenceTime, content.CreatedAt)
		assert.Equal(t,
			"🏠東京でのウッドデッキ設置工事が完成しました！\n✨お客様に大変喜んでいただけました\n\n夏の日差しに映える素敵な外構です☀️\n\n📞無料相談受付中\n\n#外構工事 #ウッドデッキ設置 #東京 #エクステリア #庭づくり #夏",
			content.Body,
		)
	})

	t.Run("modo auto registra o tipo sorteado", func(t *testing.T) {
		service := newTestService(fixedRandom{index: 1})

		content := service.GenerateInstagramPost(context.Background(), summer, domain.ContentTypeAuto)

		assert.False(t, content.Degraded)
		assert.Equal(t, domain.ContentTypeProposal, content.ContentType)
		assert.Contains(t, content.Body, "夏におすすめの日よけ工事のご提案")
	})

	t.Run("depoimento usa uma avaliação da lista", func(t *testing.T) {
		service := newTestService(fixedRandom{index: 0})

		content := service.GenerateInstagramPost(context.Background(), summer, domain.ContentTypeTestimonial)

		assert.False(t, content.Degraded)
		assert.Contains(t, content.Body, "「"+customerReviews[0]+"」")
	})

	t.Run("tipo desconhecido usa o post de contingência", func(t *testing.T) {
		service := newTestService(fixedRandom{})

		content := service.GenerateInstagramPost(context.Background(), summer, domain.ContentType("blog"))

		assert.True(t, content.Degraded)
		assert.Contains(t, content.FailureReason, ErrUnknownContentType.Error())
		assert.Equal(t, service.FallbackPost(summer), content.Body)
		assert.Contains(t, content.Body, "🏗️ 夏の外構工事承ります！")
		assert.Contains(t, content.Body, "090-1234-5678")
	})

	t.Run("lista de áreas vazia usa o post de contingência", func(t *testing.T) {
		business := testBusiness()
		business.TargetAreas = nil
		service := NewService(business, fixedRandom{})

		content := service.GenerateInstagramPost(context.Background(), summer, domain.ContentTypeShowcase)

		assert.True(t, content.Degraded)
		assert.Contains(t, content.FailureReason, ErrEmptyChoices.Error())
		assert.Equal(t, domain.ContentTypeShowcase, content.ContentType)
	})

	t.Run("pânico vira contingência", func(t *testing.T) {
		service := newTestService(panicRandom{})

		content := service.GenerateInstagramPost(context.Background(), summer, domain.ContentTypeAuto)

		assert.True(t, content.Degraded)
		assert.Contains(t, content.FailureReason, ErrGenerationPanic.Error())
		assert.Equal(t, service.FallbackPost(summer), content.Body)
	})
}

func TestAvailableDates(t *testing.T) {
	dates := AvailableDates(referenceTime)

	require.Len(t, dates, 5)
	expectedDays := []int{18, 19, 22, 23, 24}
	for i, date := range dates {
		assert.Equal(t, expectedDays[i], date.Day())
		assert.NotEqual(t, time.Saturday, date.Weekday())
		assert.NotEqual(t, time.Sunday, date.Weekday())
	}

	assert.Equal(t,
		"・01月18日（木） 9:00-17:00\n・01月19日（金） 9:00-17:00\n・01月22日（月） 9:00-17:00\n・01月23日（火） 9:00-17:00\n・01月24日（水） 9:00-17:00",
		FormatAvailableDates(dates),
	)
}

func TestService_BuildEmailReply(t *testing.T) {
	winter := domain.SeasonForMonth(time.January)

	t.Run("resposta completa", func(t *testing.T) {
		service := newTestService(fixedRandom{index: 1})

		content := service.BuildEmailReply(context.Background(), winter, domain.SampleInquiry())

		assert.False(t, content.Degraded)
		assert.Equal(t, domain.ContentKindInquiryReply, content.Kind)
		assert.True(t, len(content.Body) > 0)
		assert.Contains(t, content.Body, "田中太郎様")
		assert.Contains(t, content.Body, "ウッドデッキ設置に関するご相談を承りました。")
		assert.Contains(t, content.Body, "【ご相談内容】\n庭にウッドデッキを設置したいと考えています。見積もりをお願いします。")
		assert.Contains(t, content.Body, "【弊社からのご提案】\n春工事早期予約")
		assert.Contains(t, content.Body, "・01月18日（木） 9:00-17:00")
		assert.Contains(t, content.Body, "メール: info@exterior-example.com")
		assert.Empty(t, UnresolvedFields(content.Body))
	})

	t.Run("campos ausentes usam os textos padrão", func(t *testing.T) {
		service := newTestService(fixedRandom{})

		content := service.BuildEmailReply(context.Background(), winter, domain.InquiryRequest{})

		assert.False(t, content.Degraded)
		assert.Contains(t, content.Body, "お客様様")
		assert.Contains(t, content.Body, "外構工事に関するご相談")
		assert.Contains(t, content.Body, "【ご相談内容】\nお問い合わせ")
	})

	t.Run("estação sem campanhas usa a resposta de contingência", func(t *testing.T) {
		service := newTestService(fixedRandom{})

		content := service.BuildEmailReply(context.Background(), domain.Season{Name: domain.Winter}, domain.SampleInquiry())

		assert.True(t, content.Degraded)
		assert.Equal(t, fallbackReply, content.Body)
		assert.NotEmpty(t, content.FailureReason)
	})
}

func TestService_BuildFollowUpEmail(t *testing.T) {
	service := newTestService(fixedRandom{})

	content := service.BuildFollowUpEmail(context.Background(), domain.SeasonForMonth(time.October), domain.InquiryRequest{Name: "佐藤", Service: "フェンス設置"})

	assert.False(t, content.Degraded)
	assert.Equal(t, domain.ContentKindFollowUp, content.Kind)
	assert.Contains(t, content.Body, "佐藤様")
	assert.Contains(t, content.Body, "フェンス設置の件で")
	assert.Contains(t, content.Body, "紅葉の季節も美しい庭になりました🍁")
}

func TestService_SuggestCampaign(t *testing.T) {
	service := newTestService(fixedRandom{index: 0})

	assert.Equal(t, "夏の快適外構キャンペーン", service.SuggestCampaign(domain.SeasonForMonth(time.August)))
	assert.Empty(t, service.SuggestCampaign(domain.Season{}))
}

func TestService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	summer := domain.SeasonForMonth(time.July)

	t.Run("histórico desabilitado", func(t *testing.T) {
		service := newTestService(fixedRandom{})

		_, err := service.ListRecent(ctx, "", 10)
		assert.ErrorIs(t, err, ErrHistoryDisabled)
	})

	t.Run("conteúdo gerado é salvo", func(t *testing.T) {
		mockRepo := mocks.NewMockContentRepository(ctrl)
		service := newTestService(fixedRandom{}).WithHistory(mockRepo)

		mockRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, content *domain.GeneratedContent) error {
				assert.Equal(t, domain.ContentKindInstagramPost, content.Kind)
				assert.NotEmpty(t, content.Body)
				return nil
			})

		service.GenerateInstagramPost(ctx, summer, domain.ContentTypeShowcase)
	})

	t.Run("falha ao salvar não afeta o conteúdo", func(t *testing.T) {
		mockRepo := mocks.NewMockContentRepository(ctrl)
		service := newTestService(fixedRandom{}).WithHistory(mockRepo)

		mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))

		content := service.BuildEmailReply(ctx, summer, domain.SampleInquiry())
		assert.False(t, content.Degraded)
	})

	t.Run("lista o histórico", func(t *testing.T) {
		mockRepo := mocks.NewMockContentRepository(ctrl)
		service := newTestService(fixedRandom{}).WithHistory(mockRepo)

		expected := []*domain.GeneratedContent{{ID: "abc", Kind: domain.ContentKindFollowUp}}
		mockRepo.EXPECT().ListRecent(ctx, domain.ContentKindFollowUp, 5).Return(expected, nil)

		contents, err := service.ListRecent(ctx, domain.ContentKindFollowUp, 5)
		require.NoError(t, err)
		assert.Equal(t, expected, contents)
	})
}

func TestService_LogsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	log.SetupTestLogger()
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	ctx, correlationID := log.WithCorrelationID(context.Background())
	summer := domain.SeasonForMonth(time.July)

	post := newTestService(panicRandom{}).GenerateInstagramPost(ctx, summer, domain.ContentTypeShowcase)
	require.True(t, post.Degraded)

	out := buf.String()
	assert.Contains(t, out, "texto de contingência")
	assert.Contains(t, out, "Post do Instagram gerado")
	assert.Equal(t, 2, strings.Count(out, correlationID))
}
