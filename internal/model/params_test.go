package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAudioChannels(t *testing.T) {
	tests := []struct {
		in       string
		expected AudioChannels
	}{
		{"", AudioChannelsNone},
		{"none", AudioChannelsNone},
		{"clone_left", AudioChannelsCloneLeft},
		{"Clone-Right", AudioChannelsCloneRight},
	}
	for _, test := range tests {
		got, err := ParseAudioChannels(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.expected, got, test.in)
	}

	_, err := ParseAudioChannels("mono")
	assert.Error(t, err)
}

func TestAudioChannels_StringRoundTrip(t *testing.T) {
	for _, ac := range AllAudioChannels() {
		parsed, err := ParseAudioChannels(ac.String())
		require.NoError(t, err)
		assert.Equal(t, ac, parsed)
	}
	assert.Equal(t, "unknown", AudioChannels(7).String())
}

func TestTranscodeParameters_Validate(t *testing.T) {
	valid := DefaultParameters()
	valid.CropTop = 50
	valid.CropRight = 1000
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *TranscodeParameters)
	}{
		{"quality too low", func(p *TranscodeParameters) { p.Quality = 0 }},
		{"quality too high", func(p *TranscodeParameters) { p.Quality = 65 }},
		{"crop not a step multiple", func(p *TranscodeParameters) { p.CropLeft = 75 }},
		{"crop too large", func(p *TranscodeParameters) { p.CropBottom = 1050 }},
		{"volume zero", func(p *TranscodeParameters) { p.VolumePercent = 0 }},
		{"volume not a step multiple", func(p *TranscodeParameters) { p.VolumePercent = 101 }},
		{"volume too loud", func(p *TranscodeParameters) { p.VolumePercent = 155 }},
		{"unknown channel mode", func(p *TranscodeParameters) { p.AudioChannels = 3 }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := DefaultParameters()
			test.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestTranscodeParameters_HasCrop(t *testing.T) {
	p := DefaultParameters()
	assert.False(t, p.HasCrop())
	p.CropBottom = 50
	assert.True(t, p.HasCrop())
}
