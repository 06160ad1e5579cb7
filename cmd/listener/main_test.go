package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ai-listener/internal/emotion"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := execute(t, "", "analyze", "--seed", "3", "I", "want", "to", "die")
	require.NoError(t, err)

	var reply emotion.Reply
	require.NoError(t, json.Unmarshal([]byte(out), &reply))
	assert.True(t, reply.IsCrisis)
	assert.Equal(t, "crisis", reply.Emotion)
	assert.Equal(t, 1.0, reply.Confidence)
	assert.Contains(t, reply.CopingTip, "988")
}

func TestAnalyzeCommandSeedIsDeterministic(t *testing.T) {
	first, err := execute(t, "", "analyze", "--seed", "9", "I feel so lonely")
	require.NoError(t, err)
	second, err := execute(t, "", "analyze", "--seed", "9", "I feel so lonely")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzeCommandDetail(t *testing.T) {
	out, err := execute(t, "", "analyze", "--detail", "my boyfriend left me")
	require.NoError(t, err)

	var analysis emotion.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.Equal(t, "heartbreak", analysis.Reply.Emotion)
	assert.Equal(t, emotion.TopicContext{Topic: "relationship", Person: "boyfriend"}, analysis.Topic)
}

func TestAnalyzeCommandRequiresText(t *testing.T) {
	_, err := execute(t, "", "analyze")
	assert.Error(t, err)
}

func TestRunChat(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("I am so tired\n\nexit\nnever read\n")
	err := runChat(in, &out, emotion.NewEngine(nil), emotion.NewSeededPicker(1), zap.NewNop())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "[tired 0.70]")
	assert.Contains(t, text, "tip: ")
	assert.Contains(t, text, "Take care of yourself.")
	assert.Equal(t, 1, strings.Count(text, "tip: "))
}

func TestChatCommandEOF(t *testing.T) {
	out, err := execute(t, "hello\n", "chat", "--seed", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "[neutral 0.30]")
}

func TestLexiconCheckBuiltIn(t *testing.T) {
	out, err := execute(t, "", "lexicon", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "lexicon ok (built-in)")
}

func TestLexiconDumpThenCheck(t *testing.T) {
	out, err := execute(t, "", "lexicon", "dump")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	out, err = execute(t, "", "lexicon", "check", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "lexicon ok ("+path+")")
}

func TestLexiconCheckRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("crisis_responses: []\ncrisis_tip: \"\"\nphrase_groups:\n  - name: bad\n    emotion: sad\n    patterns: [\"(unclosed\"]\n"), 0o600))

	_, err := execute(t, "", "lexicon", "check", "--file", path)
	assert.Error(t, err)

	_, err = execute(t, "", "--lexicon", path, "analyze", "hello")
	assert.Error(t, err)
}
