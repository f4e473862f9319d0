package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hr-assistant-be/internal/constant"
	"hr-assistant-be/internal/dto"
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/assistant/intent"
	"hr-assistant-be/pkg/docrender"
	"hr-assistant-be/pkg/llm"
	"hr-assistant-be/pkg/speech"
	"hr-assistant-be/pkg/storage"

	"github.com/google/uuid"
)

// ProviderResolver maps the caller's model selector to a provider.
type ProviderResolver interface {
	Resolve(selector string) (llm.LLMProvider, string)
}

// DocumentRenderer turns composed markdown into paginated PDF bytes.
type DocumentRenderer interface {
	Render(markdown string, meta docrender.Metadata) ([]byte, error)
}

// KnowledgeSource supplies the formatted knowledge context block.
type KnowledgeSource interface {
	KnowledgeBlock(ctx context.Context) (string, error)
}

// TurnQuota enforces the per-user daily turn allowance.
type TurnQuota interface {
	ConsumeTurn(ctx context.Context, userId string) error
}

// ConversationResponder produces the reply for non-document turns.
type ConversationResponder interface {
	Reply(ctx context.Context, provider llm.LLMProvider, transcript string, mode intent.ResponseMode, knowledge string, history []llm.Message) (string, error)
}

// DocumentComposer produces the markdown of a requested document.
type DocumentComposer interface {
	Compose(ctx context.Context, provider llm.LLMProvider, documentType, request, knowledge string, now time.Time) (string, error)
}

type IAssistantService interface {
	SendTurn(ctx context.Context, userId uuid.UUID, request *dto.SendTurnRequest) (*dto.SendTurnResponse, error)
	GetTurnHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetTurnHistoryResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
}

// assistantService orchestrates one voice/document turn: transcription,
// classification, generation, rendering, persistence and synthesis.
type assistantService struct {
	uowFactory unitofwork.RepositoryFactory
	registry   ProviderResolver

	transcriber speech.Transcriber
	synthesizer speech.Synthesizer
	store       storage.ObjectStorage

	knowledge KnowledgeSource
	responder ConversationResponder
	composer  DocumentComposer
	renderer  DocumentRenderer
	quota     TurnQuota

	extractTitle func(markdown, documentType string) string

	publisherService IPublisherService
	log              logger.ILogger
	llmLogger        *log.Logger

	sttLanguage  string
	defaultVoice string
}

// initLLMLogger opens the pipeline trace file. Tracing is best-effort: when
// the file cannot be opened the trace goes to stdout.
func initLLMLogger() *log.Logger {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return log.New(os.Stdout, "[LLM-ASSISTANT] ", log.LstdFlags)
	}
	file, err := os.OpenFile("logs/llm_assistant.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-ASSISTANT] ", log.LstdFlags)
	}
	return log.New(file, "[LLM-ASSISTANT] ", log.LstdFlags)
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	registry ProviderResolver,
	transcriber speech.Transcriber,
	synthesizer speech.Synthesizer,
	store storage.ObjectStorage,
	knowledge KnowledgeSource,
	conversationResponder ConversationResponder,
	documentComposer DocumentComposer,
	renderer DocumentRenderer,
	quota TurnQuota,
	extractTitle func(markdown, documentType string) string,
	publisherService IPublisherService,
	log logger.ILogger,
	sttLanguage string,
	defaultVoice string,
) IAssistantService {
	return &assistantService{
		uowFactory:       uowFactory,
		registry:         registry,
		transcriber:      transcriber,
		synthesizer:      synthesizer,
		store:            store,
		knowledge:        knowledge,
		responder:        conversationResponder,
		composer:         documentComposer,
		renderer:         renderer,
		quota:            quota,
		extractTitle:     extractTitle,
		publisherService: publisherService,
		log:              log,
		llmLogger:        initLLMLogger(),
		sttLanguage:      sttLanguage,
		defaultVoice:     defaultVoice,
	}
}

func (s *assistantService) SendTurn(ctx context.Context, userId uuid.UUID, request *dto.SendTurnRequest) (*dto.SendTurnResponse, error) {
	start := time.Now()

	if request.AudioBase64 == "" && request.TextMessage == "" {
		return nil, dto.NewInvalidInput("either audio_base64 or text_message is required")
	}

	if s.quota != nil {
		if err := s.quota.ConsumeTurn(ctx, userId.String()); err != nil {
			return nil, err
		}
	}

	transcript, err := s.resolveTranscript(ctx, request)
	if err != nil {
		return nil, err
	}

	// History is read outside the turn transaction so the current message
	// is excluded from the prompt context.
	history, err := s.loadHistory(ctx, userId, request.SessionId)
	if err != nil {
		return nil, err
	}

	knowledge := ""
	if s.knowledge != nil {
		knowledge, err = s.knowledge.KnowledgeBlock(ctx)
		if err != nil {
			// Absence of knowledge is a valid state; the turn proceeds.
			s.log.Warn("assistant", "knowledge context unavailable", map[string]interface{}{"error": err.Error()})
			knowledge = ""
		}
	}

	historyContents := make([]string, 0, len(history))
	promptHistory := make([]llm.Message, 0, len(history))
	for _, turn := range history {
		historyContents = append(historyContents, turn.Content)
		role := "user"
		if turn.Role == constant.TurnRoleAssistant {
			role = "assistant"
		}
		promptHistory = append(promptHistory, llm.Message{Role: role, Content: turn.Content})
	}

	detected := intent.Classify(transcript, historyContents)
	if detected.Type != intent.TypeDocument {
		// An explicit response_type from the client wins over the
		// classifier's mode.
		switch request.ResponseType {
		case string(intent.ModeConcise):
			detected.ResponseMode = intent.ModeConcise
		case string(intent.ModeDetailed):
			detected.ResponseMode = intent.ModeDetailed
		}
	}
	provider, modelUsed := s.registry.Resolve(request.AiModel)
	if s.llmLogger != nil {
		s.llmLogger.Printf("session=%s intent=%s mode=%s doc=%s model=%s transcript=%q",
			request.SessionId, detected.Type, detected.ResponseMode, detected.DocumentType, modelUsed, transcript)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	userTurn := entity.Turn{
		Id:        uuid.New(),
		SessionId: request.SessionId,
		UserId:    userId,
		Role:      constant.TurnRoleUser,
		Content:   transcript,
		CreatedAt: now,
	}
	if err := uow.TurnRepository().Create(ctx, &userTurn); err != nil {
		return nil, err
	}

	response := &dto.SendTurnResponse{
		Transcript: transcript,
		Intent:     string(detected.Type),
	}

	assistantTurn := entity.Turn{
		Id:        uuid.New(),
		SessionId: request.SessionId,
		UserId:    userId,
		Role:      constant.TurnRoleAssistant,
		CreatedAt: now,
	}

	if detected.Type == intent.TypeDocument {
		doc, err := s.produceDocument(ctx, provider, modelUsed, userId, request.SessionId, detected.DocumentType, transcript, knowledge, start)
		if err != nil {
			return nil, err
		}
		if err := uow.GeneratedDocumentRepository().Create(ctx, doc); err != nil {
			return nil, err
		}

		response.ResponseText = constant.DocumentAcknowledgement
		response.FileUrl = doc.FileUrl
		response.FileName = doc.FileName
		response.FileType = doc.FileType
		response.DocumentType = doc.DocumentType

		assistantTurn.Content = constant.DocumentAcknowledgement
		assistantTurn.FileUrl = doc.FileUrl
		assistantTurn.FileName = doc.FileName
		assistantTurn.FileType = doc.FileType
		assistantTurn.DocumentType = doc.DocumentType
	} else {
		reply, err := s.responder.Reply(ctx, provider, transcript, detected.ResponseMode, knowledge, promptHistory)
		if err != nil {
			return nil, dto.NewGenerationFailed(err)
		}
		response.ResponseText = reply
		assistantTurn.Content = reply
	}

	if err := uow.TurnRepository().Create(ctx, &assistantTurn); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Voice synthesis is skipped on document turns and best-effort on the
	// rest: a TTS outage costs the audio, never the turn.
	if detected.Type != intent.TypeDocument && s.wantsAudio(request) {
		voiceId := request.VoiceId
		if voiceId == "" {
			voiceId = s.defaultVoice
		}
		audio, err := s.synthesizer.Synthesize(ctx, response.ResponseText, voiceId)
		if err != nil {
			s.log.Error("assistant", "speech synthesis failed", map[string]interface{}{
				"error": dto.NewSynthesisFailed(err).Error(),
			})
		} else {
			response.AudioContent = base64.StdEncoding.EncodeToString(audio)
		}
	}

	response.ProcessingTime = time.Since(start).Milliseconds()
	if s.llmLogger != nil {
		s.llmLogger.Printf("session=%s done in %dms (audio=%t, file=%s)",
			request.SessionId, response.ProcessingTime, response.AudioContent != "", response.FileName)
	}
	s.publishTurnCompleted(ctx, userId, request.SessionId, modelUsed, response)

	return response, nil
}

func (s *assistantService) resolveTranscript(ctx context.Context, request *dto.SendTurnRequest) (string, error) {
	if request.AudioBase64 == "" {
		return strings.TrimSpace(request.TextMessage), nil
	}

	audio, err := base64.StdEncoding.DecodeString(request.AudioBase64)
	if err != nil {
		return "", dto.NewInvalidInput("audio_base64 is not valid base64")
	}

	transcript, err := s.transcriber.Transcribe(ctx, audio, s.sttLanguage, constant.SttVocabularyHint)
	if err != nil {
		return "", dto.NewTranscriptionFailed(err)
	}
	return strings.TrimSpace(transcript), nil
}

// loadHistory returns the most recent turns in chronological order.
func (s *assistantService) loadHistory(ctx context.Context, userId, sessionId uuid.UUID) ([]*entity.Turn, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	turns, err := uow.TurnRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: constant.HistoryFetchLimit},
	)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

// produceDocument composes, renders, uploads and describes one generated
// document. A renderer failure degrades to a plain-text artifact instead of
// failing the turn.
func (s *assistantService) produceDocument(
	ctx context.Context,
	provider llm.LLMProvider,
	modelUsed string,
	userId uuid.UUID,
	sessionId uuid.UUID,
	documentType string,
	transcript string,
	knowledge string,
	start time.Time,
) (*entity.GeneratedDocument, error) {
	markdown, err := s.composer.Compose(ctx, provider, documentType, transcript, knowledge, time.Now())
	if err != nil {
		return nil, dto.NewGenerationFailed(err)
	}

	title := documentType
	if s.extractTitle != nil {
		title = s.extractTitle(markdown, documentType)
	}

	meta := docrender.Metadata{
		Title:  title,
		Type:   documentType,
		Author: "Direction des Ressources Humaines",
		Date:   time.Now().Format("02/01/2006"),
	}

	data, extension, contentType := s.renderArtifact(markdown, meta)

	path := fmt.Sprintf("generated/%s/%s_%d.%s", userId, documentType, time.Now().Unix(), extension)
	fileUrl, err := s.store.Upload(ctx, path, data, contentType)
	if err != nil {
		return nil, dto.NewUploadFailed(err)
	}

	preview := markdown
	if len([]rune(preview)) > constant.ContentPreviewLength {
		preview = string([]rune(preview)[:constant.ContentPreviewLength])
	}

	return &entity.GeneratedDocument{
		Id:               uuid.New(),
		UserId:           userId,
		SessionId:        sessionId,
		DocumentType:     documentType,
		FileUrl:          fileUrl,
		FileName:         filepath.Base(path),
		FileType:         "pdf",
		ContentPreview:   preview,
		GenerationTimeMs: time.Since(start).Milliseconds(),
		AiModelUsed:      modelUsed,
		CreatedAt:        time.Now(),
	}, nil
}

// renderArtifact renders the PDF, or falls back to the raw markdown as a
// text file when the renderer fails. The caller keeps reporting "pdf" as
// the artifact kind; the stored extension tells the truth.
func (s *assistantService) renderArtifact(markdown string, meta docrender.Metadata) ([]byte, string, string) {
	pdfBytes, err := s.renderer.Render(markdown, meta)
	if err != nil {
		s.log.Error("assistant", "document rendering failed, serving text fallback", map[string]interface{}{
			"error": dto.NewRenderFailed(err).Error(),
		})
		return []byte(markdown), "txt", "text/plain; charset=utf-8"
	}
	return pdfBytes, "pdf", "application/pdf"
}

func (s *assistantService) wantsAudio(request *dto.SendTurnRequest) bool {
	if request.GenerateAudio == nil {
		return true
	}
	return *request.GenerateAudio
}

// publishTurnCompleted hands the finished turn to the in-process bus; the
// consumer service forwards it to NATS. Auxiliary: failures are logged,
// never returned.
func (s *assistantService) publishTurnCompleted(ctx context.Context, userId, sessionId uuid.UUID, modelUsed string, response *dto.SendTurnResponse) {
	if s.publisherService == nil {
		return
	}
	payload := dto.PublishTurnCompletedMessage{
		SessionId:        sessionId,
		UserId:           userId,
		Intent:           response.Intent,
		DocumentType:     response.DocumentType,
		FileUrl:          response.FileUrl,
		AiModelUsed:      modelUsed,
		ProcessingTimeMs: response.ProcessingTime,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payloadJson); err != nil {
		s.log.Warn("assistant", "failed to publish turn message", map[string]interface{}{"error": err.Error()})
	}
}

func (s *assistantService) GetTurnHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetTurnHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	turns, err := uow.TurnRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	history := make([]*dto.GetTurnHistoryResponse, 0, len(turns))
	for _, turn := range turns {
		history = append(history, &dto.GetTurnHistoryResponse{
			Id:           turn.Id,
			Role:         turn.Role,
			Content:      turn.Content,
			FileUrl:      turn.FileUrl,
			FileName:     turn.FileName,
			FileType:     turn.FileType,
			DocumentType: turn.DocumentType,
			CreatedAt:    turn.CreatedAt,
		})
	}
	return history, nil
}

func (s *assistantService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Ownership check before the bulk delete.
	first, err := uow.TurnRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if first == nil {
		return dto.NewInvalidInput("session not found")
	}

	return uow.TurnRepository().DeleteBySessionId(ctx, sessionId)
}
