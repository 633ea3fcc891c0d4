package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/core/domain"
	"github.com/hellostack/portal/internal/core/ports"
)

const (
	MsgSubmitted        = "버그 리포트가 성공적으로 제출되었습니다!"
	MsgValidationFailed = "검증 실패"
	MsgSubmissionError  = "버그 리포트 제출 중 오류가 발생했습니다."
	msgUnknownIssue     = "알 수 없는 검증 에러"
)

// Lengths are counted in UTF-16 code units, the same unit as the form's
// String.length check. Astral characters such as emoji count as two.
func utf16Len(s string) int { return len(utf16.Encode([]rune(s))) }

func utf16Bound(cmp func(n, limit int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("invalid length param %q", fl.Param()))
		}
		return cmp(utf16Len(fl.Field().String()), limit)
	}
}

func newBugReportValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("utf16min", utf16Bound(func(n, limit int) bool { return n >= limit }))
	_ = v.RegisterValidation("utf16max", utf16Bound(func(n, limit int) bool { return n <= limit }))
	return v
}

// fieldRule is a single field of the bug report schema. The same table
// backs the per-field pass and the full submission.
type fieldRule struct {
	name     string
	tag      string
	messages map[string]string
	value    func(domain.BugReport) string
}

var bugReportRules = []fieldRule{
	{
		name: "title",
		tag:  "utf16min=10,utf16max=32",
		messages: map[string]string{
			"utf16min": "버그 제목은 최소 10자 이상이어야 합니다.",
			"utf16max": "버그 제목은 최대 32자까지 입력 가능합니다.",
		},
		value: func(r domain.BugReport) string { return r.Title },
	},
	{
		name: "description",
		tag:  "utf16min=10,utf16max=100",
		messages: map[string]string{
			"utf16min": "설명은 최소 10자 이상이어야 합니다.",
			"utf16max": "설명은 최대 100자까지 입력 가능합니다.",
		},
		value: func(r domain.BugReport) string { return r.Description },
	},
}

// SubmissionService validates bug reports and passes accepted ones on.
type SubmissionService struct {
	v      *validator.Validate
	events ports.EventDispatcher
	log    zerolog.Logger
}

func NewSubmissionService(events ports.EventDispatcher, log zerolog.Logger) *SubmissionService {
	return &SubmissionService{v: newBugReportValidator(), events: events, log: log}
}

// Submit validates report and, when valid, hands it to the dispatcher.
// Every field is checked; only the first failing one is reported.
func (s *SubmissionService) Submit(ctx context.Context, report domain.BugReport) (result domain.SubmissionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = s.unexpected(fmt.Errorf("%v", r))
		}
	}()

	var first string
	for _, rule := range bugReportRules {
		issue, err := s.check(rule, rule.value(report))
		if err != nil {
			return s.unexpected(err)
		}
		if issue != "" && first == "" {
			first = issue
		}
	}
	if first != "" {
		return domain.SubmissionResult{Success: false, Message: MsgValidationFailed, Error: first}
	}

	if err := s.accept(ctx, report); err != nil {
		return s.unexpected(err)
	}
	return domain.SubmissionResult{Success: true, Message: MsgSubmitted}
}

// ValidateField runs a single field rule. It is advisory only.
func (s *SubmissionService) ValidateField(field, value string) (domain.FieldResult, error) {
	for _, rule := range bugReportRules {
		if rule.name != field {
			continue
		}
		issue, err := s.check(rule, value)
		if err != nil {
			return domain.FieldResult{}, err
		}
		return domain.FieldResult{Field: field, Valid: issue == "", Error: issue}, nil
	}
	return domain.FieldResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownField, field)
}

// check returns the rule message for the first failed tag, or "" when the
// value passes.
func (s *SubmissionService) check(rule fieldRule, value string) (string, error) {
	err := s.v.Var(value, rule.tag)
	if err == nil {
		return "", nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "", err
	}
	if len(ve) == 0 {
		return msgUnknownIssue, nil
	}
	if msg, ok := rule.messages[ve[0].Tag()]; ok {
		return msg, nil
	}
	return msgUnknownIssue, nil
}

func (s *SubmissionService) accept(ctx context.Context, report domain.BugReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.Info().
		Str("title", report.Title).
		Int("description_len", utf16Len(report.Description)).
		Msg("bug report submitted")

	if s.events != nil {
		s.events.Enqueue(ports.Event{Key: report.Title, BugReport: &report})
	}
	return nil
}

func (s *SubmissionService) unexpected(err error) domain.SubmissionResult {
	s.log.Error().Err(err).Msg("bug report submission error")
	return domain.SubmissionResult{Success: false, Message: MsgSubmissionError, Error: err.Error()}
}
