package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/keylock/internal/adapter"
	"github.com/MKhiriev/keylock/internal/app"
	"github.com/MKhiriev/keylock/internal/controller"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/mock"
	"github.com/MKhiriev/keylock/internal/service"
	"github.com/MKhiriev/keylock/models"
)

type shareFixture struct {
	model  *ShareModel
	share  *mock.MockClientShareService
	writer *fakeWriter
	clock  *stepClock
}

func newShareFixture(t *testing.T) shareFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := shareFixture{
		share:  mock.NewMockClientShareService(ctrl),
		writer: &fakeWriter{},
		clock:  &stepClock{},
	}
	f.model = NewShareModel(context.Background(), f.share, testClipboard(f.writer, f.clock), logger.Nop())
	f.model.Init()
	return f
}

// submitAndResolve нажимает ctrl+s и доставляет результат обмена в модель.
func (f shareFixture) submitAndResolve(t *testing.T) {
	t.Helper()

	_, cmd := f.model.Update(keyCtrlS)
	require.NotNil(t, cmd)
	assert.IsType(t, controller.Loading{}, f.model.ctrl.State())

	done, ok := findMsg[shareDoneMsg](collectMsgs(cmd))
	require.True(t, ok)
	f.model.Update(done)
}

func testShareResult() models.ShareResult {
	created := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	return models.ShareResult{
		ID:            "s1",
		URL:           "https://keylock.example/secret/abc123",
		Reference:     "abc123",
		ExpireMinutes: 10,
		MaxViews:      3,
		CreatedAt:     created,
		ExpiresAt:     created.Add(10 * time.Minute),
	}
}

func TestShareModel_BlankSecret(t *testing.T) {
	f := newShareFixture(t)

	f.model.Update(keyRunes("   "))
	_, cmd := f.model.Update(keyCtrlS)

	assert.Nil(t, cmd)
	assert.Equal(t, controller.Idle{Notice: app.MsgEnterSecret}, f.model.ctrl.State())
	assert.Contains(t, f.model.View(), app.MsgEnterSecret)
}

func TestShareModel_Success(t *testing.T) {
	f := newShareFixture(t)
	result := testShareResult()

	f.share.EXPECT().
		Share(gomock.Any(), models.ShareInput{Secret: "hi", ExpiryRaw: "5", ViewsRaw: "abc"}).
		Return(result, nil)

	f.model.Update(keyRunes("hi"))
	f.model.Update(keyTab)
	f.model.Update(keyRunes("5"))
	f.model.Update(keyTab)
	f.model.Update(keyRunes("abc"))
	f.submitAndResolve(t)

	require.Equal(t, controller.Success{Result: result}, f.model.ctrl.State())
	view := f.model.View()
	assert.Contains(t, view, result.URL)
	assert.Contains(t, view, "10 minutes")
	assert.NotContains(t, view, app.MsgCopied)

	// копирование ссылки
	f.model.Update(keyRunes("c"))
	assert.Equal(t, []string{result.URL}, f.writer.texts)
	assert.Contains(t, f.model.View(), app.MsgCopied)

	f.clock.fire()
	f.model.Update(copyExpiredMsg{})
	assert.NotContains(t, f.model.View(), app.MsgCopied)

	// esc закрывает ссылку и очищает форму
	f.model.Update(keyEsc)
	assert.Equal(t, controller.Idle{}, f.model.ctrl.State())
	assert.Empty(t, f.model.secret.Value())
	assert.Empty(t, f.model.expiry.Value())
	assert.Empty(t, f.model.views.Value())
}

func TestShareModel_SubmitFromSuccess(t *testing.T) {
	f := newShareFixture(t)
	first := testShareResult()
	second := testShareResult()
	second.URL = "https://keylock.example/secret/def456"
	second.Reference = "def456"

	input := models.ShareInput{Secret: "hi", ExpiryRaw: "", ViewsRaw: ""}
	gomock.InOrder(
		f.share.EXPECT().Share(gomock.Any(), input).Return(first, nil),
		f.share.EXPECT().Share(gomock.Any(), input).Return(second, nil),
	)

	f.model.Update(keyRunes("hi"))
	f.submitAndResolve(t)
	require.Equal(t, controller.Success{Result: first}, f.model.ctrl.State())

	f.model.Update(keyRunes("c"))
	assert.Contains(t, f.model.View(), app.MsgCopied)

	// ctrl+s прямо из окна ссылки создаёт новую ссылку
	f.submitAndResolve(t)
	require.Equal(t, controller.Success{Result: second}, f.model.ctrl.State())
	view := f.model.View()
	assert.Contains(t, view, second.URL)
	assert.NotContains(t, view, first.URL)
	assert.NotContains(t, view, app.MsgCopied, "acknowledgement belongs to the previous link")
}

func TestShareModel_CopyFailure(t *testing.T) {
	f := newShareFixture(t)
	f.writer.err = errors.New("no clipboard")

	f.share.EXPECT().Share(gomock.Any(), gomock.Any()).Return(testShareResult(), nil)

	f.model.Update(keyRunes("hi"))
	f.submitAndResolve(t)

	_, cmd := f.model.Update(keyRunes("c"))
	assert.Nil(t, cmd)
	view := f.model.View()
	assert.Contains(t, view, "no clipboard")
	assert.NotContains(t, view, app.MsgCopied)
}

func TestShareModel_Failure(t *testing.T) {
	f := newShareFixture(t)

	statusErr := &adapter.StatusError{StatusCode: 500, Body: "boom"}
	f.share.EXPECT().
		Share(gomock.Any(), gomock.Any()).
		Return(models.ShareResult{}, fmt.Errorf("%w: %w", service.ErrShareFailed, statusErr))

	f.model.Update(keyRunes("hi"))
	f.submitAndResolve(t)

	failed, ok := f.model.ctrl.State().(controller.Failed)
	require.True(t, ok)
	assert.Equal(t, app.MsgShareFailed+": http 500: boom", failed.Message)
	assert.Contains(t, f.model.View(), failed.Message)

	// ввод сохраняется, esc возвращает форму
	f.model.Update(keyEsc)
	assert.Equal(t, controller.Idle{}, f.model.ctrl.State())
	assert.Equal(t, "hi", f.model.secret.Value())
}

func TestShareModel_KeysIgnoredWhileLoading(t *testing.T) {
	f := newShareFixture(t)

	f.share.EXPECT().Share(gomock.Any(), gomock.Any()).Return(testShareResult(), nil).Times(1)

	f.model.Update(keyRunes("hi"))
	_, cmd := f.model.Update(keyCtrlS)
	require.NotNil(t, cmd)

	_, again := f.model.Update(keyCtrlS)
	assert.Nil(t, again)
	f.model.Update(keyRunes("more"))
	assert.Equal(t, "hi", f.model.secret.Value())

	done, ok := findMsg[shareDoneMsg](collectMsgs(cmd))
	require.True(t, ok)
	f.model.Update(done)
	assert.IsType(t, controller.Success{}, f.model.ctrl.State())
}

func TestShareModel_LateResultAfterLeaving(t *testing.T) {
	f := newShareFixture(t)

	f.share.EXPECT().Share(gomock.Any(), gomock.Any()).Return(testShareResult(), nil)

	f.model.Update(keyRunes("hi"))
	_, cmd := f.model.Update(keyCtrlS)
	require.NotNil(t, cmd)

	_, nav := f.model.Update(keyEsc)
	require.NotNil(t, nav)
	assert.Equal(t, NavigateTo{Page: pageMenu}, nav())

	// страница открыта заново до прихода ответа
	f.model.Init()
	done, ok := findMsg[shareDoneMsg](collectMsgs(cmd))
	require.True(t, ok)
	f.model.Update(done)

	assert.Equal(t, controller.Idle{}, f.model.ctrl.State())
	assert.NotContains(t, f.model.View(), testShareResult().URL)
}
