package chat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ShariqueMemon11/Ai-chatbot/internal/domain"
	"github.com/ShariqueMemon11/Ai-chatbot/internal/market"
)

type memSaver struct {
	calls int
	err   error
}

func (m *memSaver) Save(doc *domain.KnowledgeDocument) error {
	m.calls++
	return m.err
}

type stubProvider struct {
	snapshot domain.AssetSnapshot
	err      error
}

func (p *stubProvider) ResolveAssetID(ctx context.Context, name string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return "stub-id", nil
}

func (p *stubProvider) FetchSnapshot(ctx context.Context, id string) (domain.AssetSnapshot, error) {
	return p.snapshot, p.err
}

func (p *stubProvider) FetchHistory(ctx context.Context, id string, days int) ([]domain.PricePoint, error) {
	return nil, errors.New("no history in stub")
}

func newTestSession(doc *domain.KnowledgeDocument, saver *memSaver, provider market.Provider, input string) (*Session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	svc := market.NewService(provider, saver, 7)
	return NewSession(doc, saver, svc, 0, strings.NewReader(input), out), out
}

func TestSession_MatchedQuestionAnswers(t *testing.T) {
	doc := domain.NewKnowledgeDocument()
	doc.Learn("what is a blockchain", "a distributed ledger")

	s, out := newTestSession(doc, &memSaver{}, &stubProvider{}, "")
	// Close enough to clear the 0.6 cutoff.
	s.HandleLine(context.Background(), "what is a blockchain?")

	if !strings.Contains(out.String(), "Bot: a distributed ledger") {
		t.Errorf("expected the learned answer, got:\n%s", out.String())
	}
}

func TestSession_TeachingAppendsAndSaves(t *testing.T) {
	doc := domain.NewKnowledgeDocument()
	saver := &memSaver{}
	s, out := newTestSession(doc, saver, &stubProvider{}, "the answer is 42\n")

	s.HandleLine(context.Background(), "what is the meaning of life")

	if len(doc.Questions) != 1 {
		t.Fatalf("expected 1 learned question, got %d", len(doc.Questions))
	}
	if doc.Questions[0].Question != "what is the meaning of life" ||
		doc.Questions[0].Answer != "the answer is 42" {
		t.Errorf("unexpected learned pair: %+v", doc.Questions[0])
	}
	if saver.calls != 1 {
		t.Errorf("teaching must save immediately, got %d saves", saver.calls)
	}
	if !strings.Contains(out.String(), "Thank you! I learned a new response!") {
		t.Errorf("missing learned acknowledgement:\n%s", out.String())
	}

	// The exact question now resolves directly.
	if answer, ok := s.AnswerTo("what is the meaning of life"); !ok || answer != "the answer is 42" {
		t.Errorf("taught question should resolve, got (%q, %v)", answer, ok)
	}

	// Repeating the raw input resolves too instead of re-entering teaching.
	out.Reset()
	s.HandleLine(context.Background(), "what is the meaning of life")
	if !strings.Contains(out.String(), "Bot: the answer is 42") {
		t.Errorf("repeat of taught input should answer, got:\n%s", out.String())
	}
}

func TestSession_SkipDeclinesTeaching(t *testing.T) {
	doc := domain.NewKnowledgeDocument()
	saver := &memSaver{}
	s, _ := newTestSession(doc, saver, &stubProvider{}, "Skip\n")

	s.HandleLine(context.Background(), "something unknown")

	if len(doc.Questions) != 0 {
		t.Errorf("skip must leave questions unchanged, got %d", len(doc.Questions))
	}
	if saver.calls != 0 {
		t.Errorf("skip must not save, got %d saves", saver.calls)
	}
}

func TestSession_AssetQueryRendersFreshData(t *testing.T) {
	provider := &stubProvider{snapshot: domain.AssetSnapshot{
		Name:      "Dogecoin",
		Symbol:    "DOGE",
		Price:     decimal.NewFromFloat(0.12),
		MarketCap: decimal.NewFromInt(17000000000),
		Liquidity: domain.AmountUnavailable(),
	}}
	doc := domain.NewKnowledgeDocument()
	s, out := newTestSession(doc, &memSaver{}, provider, "")

	s.HandleLine(context.Background(), "give me information about doge")

	text := out.String()
	for _, want := range []string{
		"Bot: [Updated Data]",
		"Name: Dogecoin,",
		"Symbol: DOGE,",
		"Current Price: $0.12,",
		"Liquidity: $N/A",
		"Bot: Prediction - No prediction available.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in output:\n%s", want, text)
		}
	}
	if _, ok := doc.Coins["doge"]; !ok {
		t.Error("asset query should cache under the typed name")
	}
}

func TestSession_AssetOutageRendersCachedData(t *testing.T) {
	doc := domain.NewKnowledgeDocument()
	doc.Coins["doge"] = domain.AssetEntry{
		Name:       "Dogecoin",
		Symbol:     "DOGE",
		Price:      decimal.NewFromFloat(0.10),
		MarketCap:  decimal.NewFromInt(15000000000),
		Liquidity:  domain.AmountFromFloat(900000000),
		Prediction: domain.TrendStable,
	}
	s, out := newTestSession(doc, &memSaver{}, &stubProvider{err: errors.New("offline")}, "")

	s.HandleLine(context.Background(), "price of doge")

	text := out.String()
	if !strings.Contains(text, "Bot: [Cached Data]") {
		t.Errorf("expected cached render:\n%s", text)
	}
	if !strings.Contains(text, "The coin seems stable, with no significant trend detected.") {
		t.Errorf("expected stored prediction message:\n%s", text)
	}
}

func TestSession_UnknownAssetReportsNotFound(t *testing.T) {
	s, out := newTestSession(domain.NewKnowledgeDocument(), &memSaver{},
		&stubProvider{err: errors.New("offline")}, "")

	s.HandleLine(context.Background(), "price of notacoin")

	if !strings.Contains(out.String(), "Sorry, I couldn't find that coin in my data and I couldn't fetch it online.") {
		t.Errorf("expected not-found message:\n%s", out.String())
	}
}

func TestSession_RunStopsOnExitPhrase(t *testing.T) {
	doc := domain.NewKnowledgeDocument()
	doc.Learn("hello", "hi there")
	s, out := newTestSession(doc, &memSaver{}, &stubProvider{}, "hello\nquit\n")

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Bot: hi there") {
		t.Errorf("expected the matched answer before quitting:\n%s", out.String())
	}
}
