package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ShariqueMemon11/Ai-chatbot/internal/domain"
	"github.com/ShariqueMemon11/Ai-chatbot/internal/market"
	"github.com/ShariqueMemon11/Ai-chatbot/internal/match"
)

// Saver persists the knowledge document after a successful teach.
type Saver interface {
	Save(doc *domain.KnowledgeDocument) error
}

// Session is one turn-based conversation over the shared knowledge document.
// Each input line is fully resolved, including any network round trips and a
// save, before the next one is read.
type Session struct {
	ID     string
	doc    *domain.KnowledgeDocument
	saver  Saver
	market *market.Service
	cutoff float64

	in  *bufio.Scanner
	out io.Writer
}

// NewSession wires a conversation over the given I/O channel.
func NewSession(doc *domain.KnowledgeDocument, saver Saver, svc *market.Service, cutoff float64, in io.Reader, out io.Writer) *Session {
	if cutoff <= 0 {
		cutoff = match.DefaultCutoff
	}
	return &Session{
		ID:     uuid.NewString(),
		doc:    doc,
		saver:  saver,
		market: svc,
		cutoff: cutoff,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run drives the request/response loop until an exit phrase, EOF, or context
// cancellation.
func (s *Session) Run(ctx context.Context) error {
	slog.Info("Chat session started", slog.String("session", s.ID))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(s.out, "You: ")
		line, ok := s.readLine()
		if !ok {
			return nil
		}
		if IsExitPhrase(line) {
			slog.Info("Chat session ended", slog.String("session", s.ID))
			return nil
		}

		s.HandleLine(ctx, line)
	}
}

// HandleLine resolves a single user line: asset queries go to the market
// service, everything else to the matcher and, on a miss, the teaching flow.
func (s *Session) HandleLine(ctx context.Context, line string) {
	if name, ok := ExtractAssetName(line); ok {
		s.HandleAsset(ctx, name)
		return
	}
	s.handleQuestion(line)
}

// HandleAsset runs one refresh-or-fallback lookup and renders the outcome.
func (s *Session) HandleAsset(ctx context.Context, name string) {
	result, saveErr := s.market.RefreshOrFallback(ctx, name, s.doc)
	if saveErr != nil {
		fmt.Fprintln(s.out, "Bot: Warning: I couldn't save my knowledge base, so this data may not survive a restart.")
	}

	slog.Info("Asset query handled",
		slog.String("session", s.ID),
		slog.String("coin", name),
		slog.String("result", result.Kind.String()))

	switch result.Kind {
	case domain.ResultFresh:
		s.renderEntry("[Updated Data]", result.Entry)
	case domain.ResultCached:
		s.renderEntry("[Cached Data]", result.Entry)
	case domain.ResultNotFound:
		fmt.Fprintln(s.out, "Bot: Sorry, I couldn't find that coin in my data and I couldn't fetch it online.")
	}
}

// AnswerTo resolves a general question against the learned answers without
// entering the teaching flow.
func (s *Session) AnswerTo(line string) (string, bool) {
	best, ok := match.FindBestMatch(line, s.doc.QuestionTexts(), s.cutoff)
	if !ok {
		return "", false
	}
	return match.AnswerFor(best, s.doc)
}

func (s *Session) handleQuestion(line string) {
	if answer, ok := s.AnswerTo(line); ok {
		fmt.Fprintf(s.out, "Bot: %s\n", answer)
		return
	}

	fmt.Fprintln(s.out, "Bot: I don't know the answer. Can you teach me?")
	fmt.Fprint(s.out, "Type the answer or `Skip` to skip: ")

	answer, ok := s.readLine()
	if !ok || strings.EqualFold(answer, "skip") {
		return
	}

	s.doc.Learn(line, answer)
	if err := s.saver.Save(s.doc); err != nil {
		// The in-memory document keeps the new pair; a later save can
		// still capture it.
		slog.Warn("Failed to persist learned answer", slog.Any("error", err))
		fmt.Fprintln(s.out, "Bot: Warning: I couldn't save my knowledge base, so this answer may not survive a restart.")
	}
	fmt.Fprintln(s.out, "Bot: Thank you! I learned a new response!")

	slog.Info("Learned new answer",
		slog.String("session", s.ID),
		slog.Int("questions", len(s.doc.Questions)))
}

func (s *Session) renderEntry(header string, entry domain.AssetEntry) {
	fmt.Fprintf(s.out, "Bot: %s\n", header)
	fmt.Fprintf(s.out, "Name: %s,\n", entry.Name)
	fmt.Fprintf(s.out, "Symbol: %s,\n", entry.Symbol)
	fmt.Fprintf(s.out, "Current Price: $%s,\n", entry.Price)
	fmt.Fprintf(s.out, "Market Cap: $%s,\n", entry.MarketCap)
	fmt.Fprintf(s.out, "Liquidity: $%s\n", entry.Liquidity)
	fmt.Fprintf(s.out, "Bot: Prediction - %s\n", entry.Prediction.Message())
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
