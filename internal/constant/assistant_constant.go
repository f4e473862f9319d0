package constant

const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"

	// Bounds applied when assembling LLM context
	HistoryFetchLimit   = 30
	HistoryPromptLimit  = 10
	KnowledgeFetchLimit = 15

	// ContentPreviewLength bounds the markdown prefix persisted with a
	// generated document.
	ContentPreviewLength = 500

	// DocumentAcknowledgement replaces the spoken reply on document turns.
	DocumentAcknowledgement = "Votre document a été généré avec succès. Vous pouvez le télécharger via le lien fourni."

	// Voice synthesis settings (fixed for the government voice profile)
	VoiceStability       = 0.5
	VoiceSimilarityBoost = 0.75
	VoiceStyle           = 0.2
	VoiceSpeakerBoost    = true
	TtsModelID           = "eleven_multilingual_v2"

	// SttVocabularyHint biases recognition toward domain proper nouns.
	SttVocabularyHint = "Ministère de la Fonction Publique, décret, arrêté, note de service, " +
		"direction des ressources humaines, fonctionnaire, avancement, titularisation"
)
