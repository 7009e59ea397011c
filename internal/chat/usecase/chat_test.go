package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"webaudit-srv/internal/chat"
	"webaudit-srv/internal/model"
	"webaudit-srv/pkg/gemini"
	"webaudit-srv/pkg/gemini/mocks"
	"webaudit-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(t *testing.T) (*implUseCase, *mocks.IGemini) {
	t.Helper()
	g := mocks.NewIGemini(t)
	uc := New(g, log.NewNop(), 0).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return uc, g
}

func testReport() *model.Report {
	r := &model.Report{
		TargetURL:        "https://a.com",
		OverallScore:     64,
		Niche:            "Bakery",
		ExecutiveSummary: "Great bread, poor SEO.",
		ROIEstimate:      model.ROIEstimate{TrafficGain: "+40%", LeadIncrease: "+12", RevenueProjection: "$2k"},
		Keywords:         []string{"sourdough delivery", "artisan bakery"},
	}
	for i := 1; i <= 10; i++ {
		r.Sections = append(r.Sections, model.Section{
			ID:       model.SectionID(fmt.Sprint(i)),
			Findings: []string{fmt.Sprintf("finding-%d", i)},
		})
	}
	return r
}

func TestReply(t *testing.T) {
	t.Run("embeds report context and forwards history", func(t *testing.T) {
		uc, g := newTestUseCase(t)
		history := []model.ChatMessage{
			{Role: model.ChatRoleModel, Text: "Hello! I've analyzed https://a.com."},
			{Role: model.ChatRoleUser, Text: "What is wrong?"},
			{Role: model.ChatRoleModel, Text: "Titles."},
		}

		g.On("Chat", mock.Anything, mock.MatchedBy(func(req gemini.ChatRequest) bool {
			si := req.SystemInstruction
			return strings.Contains(si, "https://a.com") &&
				strings.Contains(si, "64/100") &&
				strings.Contains(si, "+40%") &&
				strings.Contains(si, "finding-5") &&
				!strings.Contains(si, "finding-6") &&
				strings.Contains(si, "sourdough delivery") &&
				len(req.History) == 2 &&
				req.History[0].Role == gemini.RoleUser &&
				req.History[1].Role == gemini.RoleModel &&
				req.Message == "Write the schema markup" &&
				req.Temperature == chat.DefaultTemperature
		})).Return(gemini.GenerateResponse{Text: " <script>...</script> "}, nil).Once()

		out, err := uc.Reply(context.Background(), chat.ReplyInput{
			Message: "  Write the schema markup ",
			Report:  testReport(),
			History: history,
		})
		require.NoError(t, err)
		assert.False(t, out.Degraded)
		assert.Equal(t, model.ChatRoleModel, out.Message.Role)
		assert.Equal(t, "<script>...</script>", out.Message.Text)
		assert.Equal(t, 3, len(history))
	})

	t.Run("gateway failure degrades to apology", func(t *testing.T) {
		uc, g := newTestUseCase(t)
		g.On("Chat", mock.Anything, mock.Anything).Return(gemini.GenerateResponse{}, errors.New("boom")).Once()

		out, err := uc.Reply(context.Background(), chat.ReplyInput{Message: "hi", Report: testReport()})
		require.NoError(t, err)
		assert.True(t, out.Degraded)
		assert.Equal(t, chat.ApologyMessage, out.Message.Text)
	})

	t.Run("validation", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.Reply(context.Background(), chat.ReplyInput{Message: "  ", Report: testReport()})
		assert.ErrorIs(t, err, chat.ErrMessageRequired)

		_, err = uc.Reply(context.Background(), chat.ReplyInput{Message: strings.Repeat("x", chat.MaxMessageLength+1), Report: testReport()})
		assert.ErrorIs(t, err, chat.ErrMessageTooLong)

		_, err = uc.Reply(context.Background(), chat.ReplyInput{Message: "hi"})
		assert.ErrorIs(t, err, chat.ErrReportRequired)
	})
}

func TestGreeting(t *testing.T) {
	uc, _ := newTestUseCase(t)
	msg := uc.Greeting(*testReport())
	assert.Equal(t, model.ChatRoleModel, msg.Role)
	assert.Equal(t, "Hello! I've analyzed https://a.com. I found 10 issues. Ask me how to fix any of them!", msg.Text)
}

func TestBuildHistory_KeepsLastTurns(t *testing.T) {
	var history []model.ChatMessage
	for i := 0; i < 30; i++ {
		role := model.ChatRoleUser
		if i%2 == 1 {
			role = model.ChatRoleModel
		}
		history = append(history, model.ChatMessage{Role: role, Text: fmt.Sprint(i)})
	}

	contents := buildHistory(history)
	require.Len(t, contents, chat.MaxHistoryMessages)
	assert.Equal(t, "10", contents[0].Parts[0].Text)
	assert.Equal(t, gemini.RoleUser, contents[0].Role)
}
