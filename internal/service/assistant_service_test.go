package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hr-assistant-be/internal/constant"
	"hr-assistant-be/internal/dto"
	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/assistant/intent"
	"hr-assistant-be/pkg/docrender"
	"hr-assistant-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fakes ---

type fakeTurnRepo struct {
	turns   []*entity.Turn
	created []*entity.Turn
}

func (r *fakeTurnRepo) Create(ctx context.Context, turn *entity.Turn) error {
	r.created = append(r.created, turn)
	return nil
}
func (r *fakeTurnRepo) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return nil
}
func (r *fakeTurnRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Turn, error) {
	if len(r.turns) == 0 {
		return nil, nil
	}
	return r.turns[0], nil
}
func (r *fakeTurnRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Turn, error) {
	return r.turns, nil
}
func (r *fakeTurnRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.turns)), nil
}

type fakeDocRepo struct {
	created []*entity.GeneratedDocument
}

func (r *fakeDocRepo) Create(ctx context.Context, doc *entity.GeneratedDocument) error {
	r.created = append(r.created, doc)
	return nil
}
func (r *fakeDocRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedDocument, error) {
	return nil, nil
}
func (r *fakeDocRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedDocument, error) {
	return nil, nil
}
func (r *fakeDocRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeKnowledgeRepo struct{}

func (r *fakeKnowledgeRepo) Create(ctx context.Context, entry *entity.KnowledgeEntry) error {
	return nil
}
func (r *fakeKnowledgeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error) {
	return nil, nil
}
func (r *fakeKnowledgeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeUow struct {
	turnRepo  *fakeTurnRepo
	docRepo   *fakeDocRepo
	began     bool
	committed bool
	rolledBck bool
}

func (u *fakeUow) Begin(ctx context.Context) error { u.began = true; return nil }
func (u *fakeUow) Commit() error                   { u.committed = true; return nil }
func (u *fakeUow) Rollback() error {
	if !u.committed {
		u.rolledBck = true
	}
	return nil
}
func (u *fakeUow) TurnRepository() contract.TurnRepository { return u.turnRepo }
func (u *fakeUow) GeneratedDocumentRepository() contract.GeneratedDocumentRepository {
	return u.docRepo
}
func (u *fakeUow) KnowledgeEntryRepository() contract.KnowledgeEntryRepository {
	return &fakeKnowledgeRepo{}
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeProvider struct {
	reply string
	err   error
}

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return p.reply, p.err
}
func (p *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.reply, p.err
}

type fakeResolver struct {
	provider llm.LLMProvider
}

func (r *fakeResolver) Resolve(selector string) (llm.LLMProvider, string) {
	if selector == "" {
		selector = "gemini"
	}
	return r.provider, selector
}

type fakeTranscriber struct {
	transcript string
	err        error
}

func (t *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, language, vocabularyHint string) (string, error) {
	return t.transcript, t.err
}

type fakeSynthesizer struct {
	audio  []byte
	err    error
	called bool
}

func (s *fakeSynthesizer) Synthesize(ctx context.Context, text, voiceId string) ([]byte, error) {
	s.called = true
	return s.audio, s.err
}

type fakeStorage struct {
	path        string
	data        []byte
	contentType string
	err         error
}

func (s *fakeStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	s.path = path
	s.data = data
	s.contentType = contentType
	if s.err != nil {
		return "", s.err
	}
	return "https://cdn.example.test/" + path, nil
}

type fakeKnowledge struct{ block string }

func (k *fakeKnowledge) KnowledgeBlock(ctx context.Context) (string, error) { return k.block, nil }

type fakeResponder struct {
	reply string
	err   error
	mode  intent.ResponseMode
}

func (r *fakeResponder) Reply(ctx context.Context, provider llm.LLMProvider, transcript string, mode intent.ResponseMode, knowledge string, history []llm.Message) (string, error) {
	r.mode = mode
	return r.reply, r.err
}

type fakeComposer struct {
	markdown string
	err      error
	docType  string
}

func (c *fakeComposer) Compose(ctx context.Context, provider llm.LLMProvider, documentType, request, knowledge string, now time.Time) (string, error) {
	c.docType = documentType
	return c.markdown, c.err
}

type fakeRenderer struct {
	out    []byte
	err    error
	called bool
}

func (r *fakeRenderer) Render(markdown string, meta docrender.Metadata) ([]byte, error) {
	r.called = true
	return r.out, r.err
}

type fakeQuota struct{ err error }

func (q *fakeQuota) ConsumeTurn(ctx context.Context, userId string) error { return q.err }

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fixture struct {
	uow         *fakeUow
	transcriber *fakeTranscriber
	synthesizer *fakeSynthesizer
	storage     *fakeStorage
	responder   *fakeResponder
	composer    *fakeComposer
	renderer    *fakeRenderer
	quota       *fakeQuota
	service     IAssistantService
}

func newFixture() *fixture {
	f := &fixture{
		uow:         &fakeUow{turnRepo: &fakeTurnRepo{}, docRepo: &fakeDocRepo{}},
		transcriber: &fakeTranscriber{transcript: "Bonjour"},
		synthesizer: &fakeSynthesizer{audio: []byte("mp3-bytes")},
		storage:     &fakeStorage{},
		responder:   &fakeResponder{reply: "Voici la réponse."},
		composer:    &fakeComposer{markdown: "# ARRÊTÉ N° 001\n\ncorps"},
		renderer:    &fakeRenderer{out: []byte("%PDF-1.4 fake")},
		quota:       &fakeQuota{},
	}
	f.service = NewAssistantService(
		&fakeUowFactory{uow: f.uow},
		&fakeResolver{provider: &fakeProvider{reply: "ignored"}},
		f.transcriber,
		f.synthesizer,
		f.storage,
		&fakeKnowledge{block: "## Primes [rémunération]\nListe."},
		f.responder,
		f.composer,
		f.renderer,
		f.quota,
		func(markdown, documentType string) string { return "ARRÊTÉ N° 001" },
		nil,
		nopLogger{},
		"fr",
		"voice-default",
	)
	return f
}

// --- Tests ---

func TestSendTurnRequiresInput(t *testing.T) {
	f := newFixture()

	_, err := f.service.SendTurn(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId: uuid.New(),
	})

	require.Error(t, err)
	var appErr *dto.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, dto.ErrCodeInvalidInput, appErr.Code)
}

func TestSendTurnConversation(t *testing.T) {
	f := newFixture()
	userId := uuid.New()

	res, err := f.service.SendTurn(context.Background(), userId, &dto.SendTurnRequest{
		SessionId:   uuid.New(),
		TextMessage: "Quelles sont les primes disponibles ?",
	})

	require.NoError(t, err)
	assert.Equal(t, "Quelles sont les primes disponibles ?", res.Transcript)
	assert.Equal(t, "Voici la réponse.", res.ResponseText)
	assert.Equal(t, string(intent.TypeConversation), res.Intent)
	assert.NotEmpty(t, res.AudioContent)
	assert.Empty(t, res.FileUrl)

	// Both halves of the exchange are persisted inside one transaction.
	require.Len(t, f.uow.turnRepo.created, 2)
	assert.Equal(t, constant.TurnRoleUser, f.uow.turnRepo.created[0].Role)
	assert.Equal(t, constant.TurnRoleAssistant, f.uow.turnRepo.created[1].Role)
	assert.True(t, f.uow.committed)
	assert.False(t, f.renderer.called)
}

func TestSendTurnSynthesisModeConcise(t *testing.T) {
	f := newFixture()

	res, err := f.service.SendTurn(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId:   uuid.New(),
		TextMessage: "Résume-moi la procédure de titularisation",
	})

	require.NoError(t, err)
	assert.Equal(t, string(intent.TypeSynthesis), res.Intent)
	assert.Equal(t, intent.ModeConcise, f.responder.mode)
}

func TestSendTurnResponseTypeOverridesMode(t *testing.T) {
	f := newFixture()

	_, err := f.service.SendTurn(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId:    uuid.New(),
		TextMessage:  "Résume-moi la procédure de titularisation",
		ResponseType: "detailed",
	})

	require.NoError(t, err)
	assert.Equal(t, intent.ModeDetailed, f.responder.mode)
}

func TestSendTurnDocument(t *testing.T) {
	f := newFixture()
	userId := uuid.New()

	res, err := f.service.SendTurn(context.Background(), userId, &dto.SendTurnRequest{
		SessionId:   uuid.New(),
		TextMessage: "Génère un décret portant nomination du directeur",
	})

	require.NoError(t, err)
	assert.Equal(t, string(intent.TypeDocument), res.Intent)
	assert.Equal(t, intent.DocumentDecree, f.composer.docType)
	assert.Equal(t, constant.DocumentAcknowledgement, res.ResponseText)
	assert.Equal(t, "pdf", res.FileType)
	assert.Contains(t, res.FileUrl, "generated/"+userId.String()+"/")
	assert.True(t, strings.HasSuffix(f.storage.path, ".pdf"))
	assert.Equal(t, "application/pdf", f.storage.contentType)

	// Voice synthesis is skipped on document turns.
	assert.False(t, f.synthesizer.called)
	assert.Empty(t, res.AudioContent)

	require.Len(t, f.uow.docRepo.created, 1)
	doc := f.uow.docRepo.created[0]
	assert.Equal(t, intent.DocumentDecree, doc.DocumentType)
	assert.Equal(t, "gemini", doc.AiModelUsed)
	assert.True(t, f.uow.committed)
}

func TestSendTurnRenderFallbackToText(t *testing.T) {
	f := newFixture()
	f.renderer.err = errors.New("layout exploded")

	res, err := f.service.SendTurn(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId:   uuid.New(),
		TextMessage: "Rédige un rapport sur les effectifs",
	})

	require.NoError(t, err, "a renderer failure must not fail the turn")
	assert.True(t, strings.HasSuffix(f.storage.path, ".txt"))
	assert.Equal(t, []byte(f.composer.markdown), f.storage.data)
	// The artifact kind stays "pdf"; only the stored extension degrades.
	assert.Equal(t, "pdf", res.FileType)
	assert.True(t, f.uow.committed)
}

func TestSendTurnSynthesisFailureIsNonFatal(t *testing.T) {
	f := newFixture()
	f.synthesizer.err = errors.New("tts down")

	res, err := f.service.SendTurn(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId:   uuid.New(),
		TextMessage: "Bonjour",
	})

	require.NoError(t, err)
	assert.Empty(t, res.AudioContent)
	assert.Equal(t, "Voici la réponse.", res.ResponseText)
}

func TestSendTurnGenerationFailureAbortsTransaction(t *testing.T) {
	f := newFixture()
	f.responder.err = errors.New("provider down")

	_, err := f.service.SendTurn(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId:   uuid.New(),
		TextMessage: "Bonjour",
	})

	require.Error(t, err)
	var appErr *dto.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, dto.ErrCodeGenerationFailed, appErr.Code)

	// Neither turn survives: the transaction rolled back.
	assert.False(t, f.uow.committed)
	assert.True(t, f.uow.rolledBck)
}

func TestSendTurnTranscriptionFailureIsFatal(t *testing.T) {
	f := newFixture()
	f.transcriber.err = errors.New("stt 502")

	_, err := f.service.SendTurn(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId:   uuid.New(),
		AudioBase64: "aGVsbG8=",
	})

	require.Error(t, err)
	var appErr *dto.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, dto.ErrCodeTranscriptionFailed, appErr.Code)
}

func TestSendTurnRejectsInvalidBase64(t *testing.T) {
	f := newFixture()

	_, err := f.service.SendTurn(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId:   uuid.New(),
		AudioBase64: "not/base64!!",
	})

	require.Error(t, err)
	var appErr *dto.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, dto.ErrCodeInvalidInput, appErr.Code)
}

func TestSendTurnQuotaExceeded(t *testing.T) {
	f := newFixture()
	f.quota.err = &dto.LimitExceededError{Limit: 100, Used: 100}

	_, err := f.service.SendTurn(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId:   uuid.New(),
		TextMessage: "Bonjour",
	})

	var limitErr *dto.LimitExceededError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 100, limitErr.Limit)
}

func TestSendTurnAudioOptOut(t *testing.T) {
	f := newFixture()
	optOut := false

	res, err := f.service.SendTurn(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId:     uuid.New(),
		TextMessage:   "Bonjour",
		GenerateAudio: &optOut,
	})

	require.NoError(t, err)
	assert.False(t, f.synthesizer.called)
	assert.Empty(t, res.AudioContent)
}
