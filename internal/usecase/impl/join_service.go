package impl

import (
	"context"
	"log/slog"
	"time"

	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/domain/service"
	"tally/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type joinService struct {
	programRepo    repository.ProgramRepository
	membershipRepo repository.MembershipRepository
	publisher      service.EventPublisher
	logger         *slog.Logger

	now func() time.Time
}

// JoinServiceParams holds dependencies for the join orchestrator, injected by Fx.
type JoinServiceParams struct {
	fx.In

	ProgramRepo    repository.ProgramRepository
	MembershipRepo repository.MembershipRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewJoinService creates the member onboarding service.
func NewJoinService(params JoinServiceParams) usecase.JoinUsecase {
	return &joinService{
		programRepo:    params.ProgramRepo,
		membershipRepo: params.MembershipRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// Join creates a membership, or reports the existing one untouched. Joining
// twice is always safe: the second call returns the current balance and
// wallet-pass URLs without writing anything.
func (s *joinService) Join(ctx context.Context, programPublicID, walletPassID string, profile *usecase.JoinProfile) (*usecase.JoinResult, error) {
	program, err := s.programRepo.FindProgramByPublicID(ctx, programPublicID)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return &usecase.JoinResult{Success: false, Reason: usecase.EarnReasonProgramUnavailable}, nil
		}

		return nil, errors.Wrap(err, "failed to resolve program")
	}

	if !program.Acceptable() {
		return &usecase.JoinResult{Success: false, Reason: usecase.EarnReasonProgramUnavailable}, nil
	}

	existing, err := s.membershipRepo.FindMembership(ctx, program.ID, walletPassID)
	if err != nil && !errors.Is(err, repository.ErrMembershipNotFound) {
		return nil, errors.Wrap(err, "failed to find membership")
	}
	if existing != nil {
		return alreadyMemberResult(existing), nil
	}

	membership := &entity.Membership{
		ProgramID:    program.ID,
		WalletPassID: walletPassID,
		JoinedAt:     s.now(),
	}
	if profile != nil {
		membership.FirstName = profile.FirstName
		membership.LastName = profile.LastName
		membership.Email = profile.Email
		membership.DateOfBirth = profile.DateOfBirth
	}

	if err := s.membershipRepo.CreateMembership(ctx, membership); err != nil {
		// Two joins raced; the unique constraint picked a winner. Report the
		// surviving row exactly as a repeat join would.
		if errors.Is(err, repository.ErrDuplicateMembership) {
			winner, findErr := s.membershipRepo.FindMembership(ctx, program.ID, walletPassID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to load membership after duplicate join")
			}

			return alreadyMemberResult(winner), nil
		}

		return nil, errors.Wrap(err, "failed to create membership")
	}

	s.publishProvision(ctx, program, membership)

	return &usecase.JoinResult{
		Success:       true,
		AlreadyMember: false,
		StampsBalance: membership.StampsBalance,
		HasWalletPass: false,
	}, nil
}

// RetryWalletPass re-publishes the pass provision event for a membership
// whose original provisioning never landed. Unlike the publish after a join,
// a failure here is surfaced: the caller explicitly asked for the retry.
func (s *joinService) RetryWalletPass(ctx context.Context, programPublicID, walletPassID string) error {
	program, err := s.programRepo.FindProgramByPublicID(ctx, programPublicID)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return domainerrors.ErrProgramNotFound
		}

		return errors.Wrap(err, "failed to resolve program")
	}

	membership, err := s.membershipRepo.FindMembership(ctx, program.ID, walletPassID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return domainerrors.ErrMembershipNotFound
		}

		return errors.Wrap(err, "failed to find membership")
	}

	event := &service.WalletPassEvent{
		Kind:            service.WalletPassEventProvision,
		MembershipID:    membership.ID.String(),
		ProgramPublicID: program.PublicID,
		WalletPassID:    membership.WalletPassID,
		StampsBalance:   membership.StampsBalance,
		RewardThreshold: program.RewardThreshold,
	}
	if err := s.publisher.PublishWalletPassEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish wallet pass provision event")
	}

	return nil
}

func alreadyMemberResult(membership *entity.Membership) *usecase.JoinResult {
	return &usecase.JoinResult{
		Success:         true,
		AlreadyMember:   true,
		StampsBalance:   membership.StampsBalance,
		HasWalletPass:   membership.HasWalletPass,
		AppleWalletURL:  membership.AppleWalletURL,
		GoogleWalletURL: membership.GoogleWalletURL,
	}
}

// publishProvision emits the first pass-creation event. Fire-and-forget: the
// membership row is already committed, so the join succeeds regardless and
// the member can retry provisioning later.
func (s *joinService) publishProvision(ctx context.Context, program *entity.LoyaltyProgram, membership *entity.Membership) {
	event := &service.WalletPassEvent{
		Kind:            service.WalletPassEventProvision,
		MembershipID:    membership.ID.String(),
		ProgramPublicID: program.PublicID,
		WalletPassID:    membership.WalletPassID,
		StampsBalance:   membership.StampsBalance,
		RewardThreshold: program.RewardThreshold,
	}

	if err := s.publisher.PublishWalletPassEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish wallet pass provision event",
			slog.String("membership_id", membership.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
