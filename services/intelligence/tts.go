package intelligence

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// TTSClient renders assistant replies to MP3 via Google Cloud Text-to-Speech.
type TTSClient struct {
	client       *texttospeech.Client
	languageCode string
	voiceName    string
}

func NewTTSClient(ctx context.Context, credentialsFile, languageCode, voiceName string) (*TTSClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	return &TTSClient{
		client:       client,
		languageCode: languageCode,
		voiceName:    voiceName,
	}, nil
}

// Synthesize converts text to MP3 audio bytes.
func (t *TTSClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := t.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: t.languageCode,
			Name:         t.voiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	return resp.AudioContent, nil
}

// Close releases the underlying gRPC connection.
func (t *TTSClient) Close() error {
	return t.client.Close()
}
