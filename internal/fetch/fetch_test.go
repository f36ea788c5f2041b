package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "posting")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestURL_Non200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 404")

	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "invalid URL", ferr.Message)
}

func TestExtractPostingText_SelectorPriority(t *testing.T) {
	html := `<html><body>
		<main>wrapper text</main>
		<div class="job-description">Build services in Go</div>
	</body></html>`

	text, err := ExtractPostingText(html, []string{".job-description", "main"})
	require.NoError(t, err)

	assert.Equal(t, "Build services in Go", text)
}

func TestExtractPostingText_RemovesNoise(t *testing.T) {
	html := `<html><body>
		<nav>site navigation</nav>
		<div class="job-description">
			Real content
			<div class="eeo-statement">equal opportunity text</div>
		</div>
		<footer>footer links</footer>
	</body></html>`

	text, err := ExtractPostingText(html, []string{".job-description"}, ".eeo-statement")
	require.NoError(t, err)

	assert.Contains(t, text, "Real content")
	assert.NotContains(t, text, "site navigation")
	assert.NotContains(t, text, "equal opportunity")
	assert.NotContains(t, text, "footer links")
}

func TestExtractPostingText_BodyFallback(t *testing.T) {
	html := `<html><body><p>First line</p>

		<p>Second line</p></body></html>`

	text, err := ExtractPostingText(html, []string{".does-not-exist"})
	require.NoError(t, err)

	assert.Equal(t, "First lineSecond line", strings.ReplaceAll(text, "\n", ""))
	assert.NotContains(t, text, "\n\n")
}

func TestDetectPlatform_KnownHosts(t *testing.T) {
	assert.Equal(t, PlatformGreenhouse, DetectPlatform("https://boards.greenhouse.io/acme/jobs/123"))
	assert.Equal(t, PlatformLever, DetectPlatform("https://jobs.lever.co/acme/abc"))
	assert.Equal(t, PlatformWorkday, DetectPlatform("https://acme.wd1.myworkdayjobs.com/careers/job/123"))
	assert.Equal(t, PlatformUnknown, DetectPlatform("https://careers.example.com/job/123"))
}

func TestPlatformContentSelectors_UnknownUsesGeneric(t *testing.T) {
	assert.Equal(t, JobPostingSelectors(), PlatformContentSelectors(PlatformUnknown))
	assert.NotEmpty(t, PlatformContentSelectors(PlatformGreenhouse))
}

func TestPlatformNoiseSelectors_IncludesCommonAndSpecific(t *testing.T) {
	selectors := PlatformNoiseSelectors(PlatformGreenhouse)

	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, ".post-apply")
}

func TestShouldUseBrowser_ShortContent(t *testing.T) {
	assert.True(t, ShouldUseBrowser("Apply now"))
	assert.True(t, ShouldUseBrowser("   \n  "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("job posting text ", 50)))
}
