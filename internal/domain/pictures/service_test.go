package pictures

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-store-inventory/internal/platform/apperr"
	"pet-store-inventory/internal/platform/httpclient"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	mu    sync.Mutex
	files map[string][]byte
	urls  map[string]string
}

func newTestRepo() *testRepo {
	return &testRepo{files: map[string][]byte{}, urls: map[string]string{}}
}

func (r *testRepo) SavePicture(fn string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files[fn] = data
}

func (r *testRepo) GetPicture(fn string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.files[fn]
	return d, ok
}

func (r *testRepo) DeletePicture(fn string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.files[fn]
	delete(r.files, fn)
	return ok
}

func (r *testRepo) PictureExists(fn string) bool {
	_, ok := r.GetPicture(fn)
	return ok
}

func (r *testRepo) SaveURLMapping(u, fn string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls[u] = fn
}

func (r *testRepo) FilenameForURL(u string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn, ok := r.urls[u]
	return fn, ok
}

func (r *testRepo) DeleteURLMapping(u string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.urls, u)
}

func (r *testRepo) ReleasePicture(fn string) bool { return r.DeletePicture(fn) }

func imageResponder(ct string, body []byte) httpmock.Responder {
	return func(*http.Request) (*http.Response, error) {
		resp := httpmock.NewBytesResponse(http.StatusOK, body)
		if ct != "" {
			resp.Header.Set("Content-Type", ct)
		} else {
			resp.Header.Del("Content-Type")
		}
		return resp, nil
	}
}

func newTestService(t *testing.T) (*Service, *testRepo, *httpmock.MockTransport) {
	t.Helper()
	tr := httpmock.NewMockTransport()
	repo := newTestRepo()
	svc := NewService(repo, httpclient.NewWithTransport(time.Second, tr), Options{})
	return svc, repo, tr
}

// -------------------------
// Tests
// -------------------------

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		ct      string
		want    string
		wantErr bool
	}{
		{"image/jpeg", ExtJPG, false},
		{"IMAGE/JPG; charset=binary", ExtJPG, false},
		{"image/png", ExtPNG, false},
		{"image/gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.ct, func(t *testing.T) {
			got, err := ExtensionFor(tt.ct)
			if tt.wantErr {
				assert.True(t, apperr.Is(err, apperr.KindUnsupportedMedia))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentTypeFor(t *testing.T) {
	ct, err := ContentTypeFor("tom-cat.PNG")
	require.NoError(t, err)
	assert.Equal(t, ContentTypePNG, ct)

	ct, err = ContentTypeFor("tom-cat.jpeg")
	require.NoError(t, err)
	assert.Equal(t, ContentTypeJPEG, ct)

	_, err = ContentTypeFor("unknown.gif")
	assert.True(t, apperr.Is(err, apperr.KindUnsupportedMedia))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "mr-whiskers-maine-coon.jpg", Filename("Mr Whiskers", "Maine Coon", ExtJPG))
}

func TestResolve_DownloadsAndRecordsMapping(t *testing.T) {
	svc, repo, tr := newTestService(t)
	tr.RegisterResponder(http.MethodGet, "https://img.test/tom.jpg", imageResponder("image/jpeg", []byte("jpegdata")))

	res, err := svc.Resolve(context.Background(), "https://img.test/tom.jpg", "Tom", "Cat")
	require.NoError(t, err)

	assert.Equal(t, "tom-cat.jpg", res.Filename)
	assert.Equal(t, []byte("jpegdata"), res.Data)
	assert.False(t, res.Cached())

	fn, ok := repo.FilenameForURL("https://img.test/tom.jpg")
	require.True(t, ok)
	assert.Equal(t, "tom-cat.jpg", fn)
}

func TestResolve_CacheHitSkipsDownload(t *testing.T) {
	svc, repo, tr := newTestService(t)
	tr.RegisterResponder(http.MethodGet, "https://img.test/tom.png", imageResponder("image/png", []byte("png")))

	first, err := svc.Resolve(context.Background(), "https://img.test/tom.png", "Tom", "Cat")
	require.NoError(t, err)
	repo.SavePicture(first.Filename, first.Data)

	second, err := svc.Resolve(context.Background(), "https://img.test/tom.png", "tom", "cat")
	require.NoError(t, err)

	assert.True(t, second.Cached())
	assert.Equal(t, "tom-cat.png", second.Filename)
	assert.Equal(t, 1, tr.GetTotalCallCount())
}

func TestResolve_MappingToMissingFileDownloadsAgain(t *testing.T) {
	svc, _, tr := newTestService(t)
	tr.RegisterResponder(http.MethodGet, "https://img.test/tom.png", imageResponder("image/png", []byte("png")))

	_, err := svc.Resolve(context.Background(), "https://img.test/tom.png", "Tom", "Cat")
	require.NoError(t, err)
	// No se guardó el archivo => el mapeo no sirve.
	res, err := svc.Resolve(context.Background(), "https://img.test/tom.png", "Tom", "Cat")
	require.NoError(t, err)

	assert.False(t, res.Cached())
	assert.Equal(t, 2, tr.GetTotalCallCount())
}

func TestResolve_SameURLDifferentPetGetsOwnFile(t *testing.T) {
	svc, repo, tr := newTestService(t)
	tr.RegisterResponder(http.MethodGet, "https://img.test/shared.jpg", imageResponder("image/jpeg", []byte("x")))

	a, err := svc.Resolve(context.Background(), "https://img.test/shared.jpg", "Tom", "Cat")
	require.NoError(t, err)
	repo.SavePicture(a.Filename, a.Data)

	b, err := svc.Resolve(context.Background(), "https://img.test/shared.jpg", "Rex", "Dog")
	require.NoError(t, err)

	assert.Equal(t, "tom-cat.jpg", a.Filename)
	assert.Equal(t, "rex-dog.jpg", b.Filename)
	assert.False(t, b.Cached())
}

func TestResolve_Failures(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
		want      apperr.Kind
	}{
		{"non-200", httpmock.NewStringResponder(http.StatusNotFound, "nope"), apperr.KindMalformed},
		{"transport", httpmock.NewErrorResponder(errors.New("connection reset")), apperr.KindMalformed},
		{"no content type", imageResponder("", []byte("??")), apperr.KindUnsupportedMedia},
		{"gif", imageResponder("image/gif", []byte("GIF89a")), apperr.KindUnsupportedMedia},
		{"too large", imageResponder("image/png", make([]byte, httpclient.MaxDownloadBody+1)), apperr.KindMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, tr := newTestService(t)
			tr.RegisterResponder(http.MethodGet, "https://img.test/pic", tt.responder)

			_, err := svc.Resolve(context.Background(), "https://img.test/pic", "Tom", "Cat")
			require.Error(t, err)
			assert.Equal(t, tt.want, apperr.KindOf(err))

			_, mapped := repo.FilenameForURL("https://img.test/pic")
			assert.False(t, mapped, "failed resolve must not record a mapping")
		})
	}
}

func TestGet(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.SavePicture("tom-cat.png", []byte("png"))

	data, ct, err := svc.Get(context.Background(), "tom-cat.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
	assert.Equal(t, ContentTypePNG, ct)

	_, _, err = svc.Get(context.Background(), "rex-dog.jpg")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, _, err = svc.Get(context.Background(), "unknown.gif")
	assert.True(t, apperr.Is(err, apperr.KindUnsupportedMedia))
}
