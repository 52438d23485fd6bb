package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/exterior-marketing/internal/domain"
	"github.com/vfg2006/exterior-marketing/internal/usecases/contenting"
	"github.com/vfg2006/exterior-marketing/pkg/apiErrors"
)

type PostRequest struct {
	Type string `json:"type"`
}

type InquiryRequest struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Content string `json:"content"`
}

func (r InquiryRequest) toDomain() domain.InquiryRequest {
	return domain.InquiryRequest{Name: r.Name, Service: r.Service, Content: r.Content}
}

// decodeOptional aceita corpo vazio, mantendo os valores padrão de dst
func decodeOptional(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// CreatePost gera um post do Instagram. Tipos desconhecidos resultam no post de contingência.
func CreatePost(service contenting.ContentGenerator, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PostRequest
		if err := decodeOptional(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		contentType, _ := domain.ParseContentType(req.Type)
		content := service.GenerateInstagramPost(r.Context(), domain.CurrentSeason(now()), contentType)

		writeJSON(w, http.StatusOK, content)
	}
}

// ReplyInquiry gera a resposta automática para um pedido de contato
func ReplyInquiry(service contenting.ContentGenerator, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InquiryRequest
		if err := decodeOptional(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		content := service.BuildEmailReply(r.Context(), domain.CurrentSeason(now()), req.toDomain())

		writeJSON(w, http.StatusOK, content)
	}
}

// FollowUpInquiry gera o e-mail de acompanhamento
func FollowUpInquiry(service contenting.ContentGenerator, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InquiryRequest
		if err := decodeOptional(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		content := service.BuildFollowUpEmail(r.Context(), domain.CurrentSeason(now()), req.toDomain())

		writeJSON(w, http.StatusOK, content)
	}
}

// ListContents lista os conteúdos gerados, opcionalmente filtrados por ?kind=
func ListContents(service contenting.ContentGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		kind := domain.ContentKind(r.URL.Query().Get("kind"))
		switch kind {
		case "", domain.ContentKindInstagramPost, domain.ContentKindInquiryReply, domain.ContentKindFollowUp:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro kind inválido", nil)
			return
		}

		contents, err := service.ListRecent(r.Context(), kind, limit)
		if err != nil {
			if errors.Is(err, contenting.ErrHistoryDisabled) {
				writeAPIError(w, apiErrors.FromError(err, apiErrors.ErrFeatureDisabled))
				return
			}
			logrus.WithError(err).Error("Erro ao listar conteúdos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar conteúdos", nil)
			return
		}

		writeJSON(w, http.StatusOK, contents)
	}
}
