package lpnb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	notebookType string
	serializer   NotebookSerializer
	options      SerializerOptions
	err          error
}

func (h *fakeHost) RegisterNotebookSerializer(notebookType string, serializer NotebookSerializer, options SerializerOptions) error {
	h.notebookType = notebookType
	h.serializer = serializer
	h.options = options
	return h.err
}

func TestRegister(t *testing.T) {
	host := &fakeHost{}
	require.NoError(t, Register(host, nil))

	assert.Equal(t, "literateProgramming.notebook", host.notebookType)
	assert.False(t, host.options.TransientOutputs)
	assert.NotNil(t, host.options.TransientCellMetadata)
	assert.Empty(t, host.options.TransientCellMetadata)
	require.NotNil(t, host.serializer)

	data, err := host.serializer.DeserializeNotebook(context.Background(), []byte("sections: [{code: x}]"))
	require.NoError(t, err)
	assert.Len(t, data.Cells, 1)

	host.options.TransientCellMetadata["x"] = true
	assert.Empty(t, DefaultRegistration().Options.TransientCellMetadata, "registration defaults must not be shared")
}

func TestRegister_Errors(t *testing.T) {
	assert.Error(t, Register(nil, nil))

	host := &fakeHost{err: errors.New("already registered")}
	err := Register(host, NewSerializer())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestDefaultOptionsAreNotMutated(t *testing.T) {
	_ = NewSerializer(WithDefaultLanguage("go"), WithStrict(true), WithMarkupLanguage("mdx"))

	d := DefaultOptions()
	assert.Equal(t, PlainTextLanguage, d.DefaultLanguage)
	assert.Equal(t, MarkdownLanguage, d.MarkupLanguage)
	assert.False(t, d.Strict)
}

func TestOptions_IgnoreEmptyValues(t *testing.T) {
	opts := applyOptions(WithDefaultLanguage(""), WithMarkupLanguage(""), WithNotifier(nil), nil)
	assert.Equal(t, PlainTextLanguage, opts.DefaultLanguage)
	assert.Equal(t, MarkdownLanguage, opts.MarkupLanguage)
	assert.NotNil(t, opts.Notifier)
}

func TestNotifiers(t *testing.T) {
	var got []string
	NotifierFunc(func(m string) { got = append(got, m) }).ShowErrorMessage("boom")
	assert.Equal(t, []string{"boom"}, got)

	rec := &recordingLog{}
	prev := Logger
	SetLogger(rec)
	defer SetLogger(prev)

	LogNotifier{}.ShowErrorMessage("warned")
	assert.Equal(t, []string{"warned"}, rec.warns)
}

func TestSetLoggerNil(t *testing.T) {
	prev := Logger
	defer SetLogger(prev)

	SetLogger(nil)
	assert.NotPanics(t, func() {
		_, _ = Deserialize(context.Background(), []byte("a: [b"))
	})
}

func TestIsMalformedDocument(t *testing.T) {
	assert.False(t, IsMalformedDocument(nil))
	assert.False(t, IsMalformedDocument(errors.New("other")))
	assert.True(t, IsMalformedDocument(wrapMalformedDocument(errors.New("yaml: line 1"))))
	assert.Nil(t, wrapMalformedDocument(nil))
}

type recordingLog struct {
	warns []string
}

func (r *recordingLog) Debug(string, ...any)      {}
func (r *recordingLog) Info(string, ...any)       {}
func (r *recordingLog) Warn(msg string, _ ...any) { r.warns = append(r.warns, msg) }
func (r *recordingLog) Error(string, ...any)      {}
