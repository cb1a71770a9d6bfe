package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ── 确认模块业务错误 ──

var (
	ErrConfirmationNotFound    = errors.New("确认令牌不存在或已过期")
	ErrConfirmationKindInvalid = errors.New("不支持的确认动作类型")
)

// 破坏性动作类型
const (
	ConfirmArchiveSubject    = "archive_subject"
	ConfirmPurgeArchive      = "purge_archive"
	ConfirmPurgeArchiveEntry = "purge_archive_entry"
	ConfirmDeleteAllSubjects = "delete_all_subjects"
)

// ConfirmationTTL 待确认动作的有效期
const ConfirmationTTL = 5 * time.Minute

// ConfirmationService 破坏性操作两段式确认
// 第一步登记动作换取令牌，第二步凭令牌在有效期内执行或取消
type ConfirmationService interface {
	Request(ctx context.Context, kind string, subjectID int64) (*PendingAction, error)
	Confirm(ctx context.Context, token string) (string, error)
	Cancel(ctx context.Context, token string) error
}

// PendingAction 登记在案的待确认动作
type PendingAction struct {
	Token     string
	Kind      string
	SubjectID int64
	Message   string
	ExpiresAt time.Time
}

type confirmationService struct {
	subjectSvc SubjectService
	archiveSvc ArchiveService
	logger     *zap.Logger
	now        func() time.Time

	mu      sync.Mutex
	pending map[string]PendingAction
}

// NewConfirmationService 创建 ConfirmationService 实例
func NewConfirmationService(subjectSvc SubjectService, archiveSvc ArchiveService, logger *zap.Logger) ConfirmationService {
	return &confirmationService{
		subjectSvc: subjectSvc,
		archiveSvc: archiveSvc,
		logger:     logger,
		now:        time.Now,
		pending:    make(map[string]PendingAction),
	}
}

// ────────────────────── Request ──────────────────────

func (s *confirmationService) Request(ctx context.Context, kind string, subjectID int64) (*PendingAction, error) {
	var message string
	switch kind {
	case ConfirmArchiveSubject:
		subject, err := s.subjectSvc.GetByID(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		message = fmt.Sprintf("Archiver la matière « %s » ? Elle sera conservée 30 jours.", subject.Name)
	case ConfirmPurgeArchive:
		message = "Vider définitivement les archives ? Cette action est irréversible."
	case ConfirmPurgeArchiveEntry:
		message = "Supprimer définitivement cette matière archivée ? Cette action est irréversible."
	case ConfirmDeleteAllSubjects:
		message = "Supprimer toutes les matières ? Cette action est irréversible."
	default:
		return nil, ErrConfirmationKindInvalid
	}

	action := PendingAction{
		Token:     uuid.NewString(),
		Kind:      kind,
		SubjectID: subjectID,
		Message:   message,
		ExpiresAt: s.now().Add(ConfirmationTTL),
	}

	s.mu.Lock()
	s.sweepLocked()
	s.pending[action.Token] = action
	s.mu.Unlock()

	s.logger.Info("已登记待确认动作", zap.String("kind", kind), zap.String("token", action.Token))
	return &action, nil
}

// ────────────────────── Confirm ──────────────────────

// Confirm 执行令牌对应的动作并消费令牌，返回动作类型
func (s *confirmationService) Confirm(ctx context.Context, token string) (string, error) {
	action, ok := s.take(token)
	if !ok {
		return "", ErrConfirmationNotFound
	}

	var err error
	switch action.Kind {
	case ConfirmArchiveSubject:
		_, err = s.archiveSvc.Archive(ctx, action.SubjectID)
	case ConfirmPurgeArchive:
		err = s.archiveSvc.Purge(ctx)
	case ConfirmPurgeArchiveEntry:
		err = s.archiveSvc.Delete(ctx, action.SubjectID)
	case ConfirmDeleteAllSubjects:
		err = s.subjectSvc.DeleteAll(ctx)
	default:
		err = ErrConfirmationKindInvalid
	}
	if err != nil {
		return "", err
	}

	s.logger.Info("待确认动作已执行", zap.String("kind", action.Kind), zap.String("token", token))
	return action.Kind, nil
}

// ────────────────────── Cancel ──────────────────────

func (s *confirmationService) Cancel(ctx context.Context, token string) error {
	if _, ok := s.take(token); !ok {
		return ErrConfirmationNotFound
	}
	s.logger.Info("待确认动作已取消", zap.String("token", token))
	return nil
}

// ────────────────────── 内部工具 ──────────────────────

// take 取出并删除令牌对应的动作；不存在或已过期时返回 false
func (s *confirmationService) take(token string) (PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action, ok := s.pending[token]
	if !ok {
		return PendingAction{}, false
	}
	delete(s.pending, token)
	if s.now().After(action.ExpiresAt) {
		return PendingAction{}, false
	}
	return action, true
}

// sweepLocked 清理过期令牌，调用方需持有锁
func (s *confirmationService) sweepLocked() {
	now := s.now()
	for token, action := range s.pending {
		if now.After(action.ExpiresAt) {
			delete(s.pending, token)
		}
	}
}
