// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"tally/config"
	"tally/internal/domain/entity"
	domainerrors "tally/internal/domain/errors"
	"tally/internal/domain/repository"
	"tally/internal/domain/service"
	"tally/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// proximityMessage is shown when exactly one stamp remains. Any other
// distance, including the unlocking earn itself, renders nothing.
const proximityMessageText = "再集 1 點即可兌換獎勵！"

type stampLedgerService struct {
	txManager      repository.TransactionManager
	programRepo    repository.ProgramRepository
	membershipRepo repository.MembershipRepository
	redemptionRepo repository.RedemptionRepository
	qrcodeService  service.QRCodeService
	publisher      service.EventPublisher
	logger         *slog.Logger
	earnTimeout    time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// StampLedgerParams holds dependencies for the stamp ledger, injected by Fx.
type StampLedgerParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProgramRepo    repository.ProgramRepository
	MembershipRepo repository.MembershipRepository
	RedemptionRepo repository.RedemptionRepository
	QRCodeService  service.QRCodeService
	Publisher      service.EventPublisher
	Logger         *slog.Logger
	Config         *config.Config
}

// NewStampLedgerService creates the member-facing earn service.
func NewStampLedgerService(params StampLedgerParams) usecase.StampLedgerUsecase {
	return &stampLedgerService{
		txManager:      params.TxManager,
		programRepo:    params.ProgramRepo,
		membershipRepo: params.MembershipRepo,
		redemptionRepo: params.RedemptionRepo,
		qrcodeService:  params.QRCodeService,
		publisher:      params.Publisher,
		logger:         params.Logger,
		earnTimeout:    params.Config.Loyalty.EarnTimeout,
		now:            time.Now,
	}
}

// Earn authorizes and applies a single stamp for a scan.
//
// Token validation happens before any row is touched; a failed validation
// writes nothing. The balance read, rate-limit check and increment all run
// inside one transaction holding a row lock on the membership, so concurrent
// earns for the same member serialize and each stamp is credited exactly once.
func (s *stampLedgerService) Earn(ctx context.Context, programPublicID, token, walletPassID string, source string) (*usecase.EarnResult, error) {
	program, err := s.programRepo.FindProgramByPublicID(ctx, programPublicID)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			// Unknown program, wrong token and paused program all collapse
			// into one opaque reason.
			return &usecase.EarnResult{Success: false, Reason: usecase.EarnReasonInvalidToken}, nil
		}

		return nil, domainerrors.ErrTransientStore.WrapMessage("failed to resolve program")
	}

	if !validateEarnToken(program, token) {
		return &usecase.EarnResult{Success: false, Reason: usecase.EarnReasonInvalidToken}, nil
	}

	earnSource := entity.EarnSourceQRScan
	if source == string(entity.EarnSourceManual) {
		earnSource = entity.EarnSourceManual
	}

	// A slow store must fail closed, never look like a granted stamp.
	earnCtx, cancel := context.WithTimeout(ctx, s.earnTimeout)
	defer cancel()

	var result *usecase.EarnResult
	var memberID uuid.UUID

	err = s.txManager.Execute(earnCtx, func(repoFactory repository.RepositoryFactory) error {
		membershipRepo := repoFactory.NewMembershipRepository()
		eventRepo := repoFactory.NewEarnEventRepository()

		member, err := membershipRepo.FindMembershipForUpdate(earnCtx, program.ID, walletPassID)
		if err != nil {
			if errors.Is(err, repository.ErrMembershipNotFound) {
				result = &usecase.EarnResult{
					Success:         false,
					Reason:          usecase.EarnReasonNotMember,
					RewardThreshold: program.RewardThreshold,
				}

				return nil
			}

			return errors.Wrap(err, "failed to lock membership")
		}
		memberID = member.ID

		now := s.now()

		var windowCount int64
		var oldestInWindow *entity.EarnEvent
		if program.MaxEarnsPerDay > 0 {
			since := now.Add(-dailyCapWindow)

			windowCount, err = eventRepo.CountEventsSince(earnCtx, member.ID, since)
			if err != nil {
				return errors.Wrap(err, "failed to count earn events")
			}

			if windowCount >= int64(program.MaxEarnsPerDay) {
				oldestInWindow, err = eventRepo.FindOldestEventSince(earnCtx, member.ID, since)
				if err != nil {
					return errors.Wrap(err, "failed to find oldest earn event")
				}
			}
		}

		eligibility := checkEarnEligibility(program, member.LastEarnAt, windowCount, oldestInWindow, now)
		if !eligibility.allowed {
			next := eligibility.nextEligibleAt
			result = &usecase.EarnResult{
				Success:         false,
				Reason:          usecase.EarnReasonCooldown,
				StampsBalance:   member.StampsBalance,
				RewardThreshold: program.RewardThreshold,
				NextEligibleAt:  &next,
			}

			return nil
		}

		newBalance := member.StampsBalance + 1
		rewardUnlocked := newBalance >= program.RewardThreshold
		if rewardUnlocked {
			// The unlocking earn resets the card; balance_after records the
			// post-reset value.
			newBalance = 0
		}

		if err := membershipRepo.ApplyEarn(earnCtx, member.ID, newBalance, member.LifetimeStamps+1, now); err != nil {
			return errors.Wrap(err, "failed to apply earn")
		}

		event := &entity.EarnEvent{
			MembershipID:   member.ID,
			OccurredAt:     now,
			BalanceAfter:   newBalance,
			RewardUnlocked: rewardUnlocked,
			Source:         earnSource,
		}
		if err := eventRepo.CreateEarnEvent(earnCtx, event); err != nil {
			return errors.Wrap(err, "failed to record earn event")
		}

		if rewardUnlocked {
			redemption := &entity.RewardRedemption{
				MembershipID:      member.ID,
				UnlockedAt:        now,
				RewardDescription: program.RewardDescription,
			}
			if err := repoFactory.NewRedemptionRepository().CreateRedemption(earnCtx, redemption); err != nil {
				return errors.Wrap(err, "failed to open redemption")
			}
		}

		// The unlocking earn never nudges, even at threshold 1 where the
		// post-reset balance is one away again.
		proximity := ""
		if !rewardUnlocked {
			proximity = proximityMessage(newBalance, program.RewardThreshold)
		}

		result = &usecase.EarnResult{
			Success:          true,
			StampsBalance:    newBalance,
			RewardThreshold:  program.RewardThreshold,
			RewardUnlocked:   rewardUnlocked,
			ProximityMessage: proximity,
		}

		return nil
	})
	if err != nil {
		if earnCtx.Err() != nil {
			s.logger.Error("earn transaction timed out, failing closed",
				slog.String("program_public_id", programPublicID),
				slog.String("error", err.Error()),
			)

			return nil, domainerrors.ErrTransientStore.WrapMessage("earn timed out")
		}

		return nil, domainerrors.ErrTransientStore.WrapMessage("earn transaction failed")
	}

	if result.Success {
		s.publishRefresh(ctx, program, memberID, walletPassID, result)
	}

	return result, nil
}

// GetMembershipStatus returns the member-facing balance view.
func (s *stampLedgerService) GetMembershipStatus(ctx context.Context, programPublicID, walletPassID string) (*usecase.MembershipStatus, error) {
	program, err := s.programRepo.FindProgramByPublicID(ctx, programPublicID)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return nil, domainerrors.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve program")
	}

	member, err := s.membershipRepo.FindMembership(ctx, program.ID, walletPassID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, domainerrors.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	rewardAvailable := false
	if _, err := s.redemptionRepo.FindOpenRedemption(ctx, member.ID); err == nil {
		rewardAvailable = true
	} else if !errors.Is(err, repository.ErrRedemptionNotFound) {
		return nil, errors.Wrap(err, "failed to check open redemption")
	}

	return &usecase.MembershipStatus{
		StampsBalance:    member.StampsBalance,
		LifetimeStamps:   member.LifetimeStamps,
		RewardThreshold:  program.RewardThreshold,
		RewardAvailable:  rewardAvailable,
		ProximityMessage: proximityMessage(member.StampsBalance, program.RewardThreshold),
		HasWalletPass:    member.HasWalletPass,
		AppleWalletURL:   member.AppleWalletURL,
		GoogleWalletURL:  member.GoogleWalletURL,
	}, nil
}

// Scan decodes a QR payload URL and dispatches on its mode.
func (s *stampLedgerService) Scan(ctx context.Context, rawURL, walletPassID string) (*usecase.ScanResult, error) {
	payload, err := s.qrcodeService.ParseScanURL(rawURL)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unrecognized scan url")
	}

	switch payload.Mode {
	case service.ScanModeEarn:
		earn, err := s.Earn(ctx, payload.ProgramPublicID, payload.EarnToken, walletPassID, string(entity.EarnSourceQRScan))
		if err != nil {
			return nil, err
		}

		return &usecase.ScanResult{Mode: service.ScanModeEarn, Earn: earn}, nil

	case service.ScanModeJoin:
		status, err := s.GetMembershipStatus(ctx, payload.ProgramPublicID, walletPassID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrMembershipNotFound) {
				return &usecase.ScanResult{Mode: service.ScanModeJoin, JoinRequired: true}, nil
			}

			return nil, err
		}

		return &usecase.ScanResult{Mode: service.ScanModeJoin, Membership: status}, nil

	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unrecognized scan mode")
	}
}

// proximityMessage returns the nudge shown when exactly one stamp remains.
func proximityMessage(balance, threshold int) string {
	if threshold-balance == 1 {
		return proximityMessageText
	}

	return ""
}

// publishRefresh emits a wallet-pass refresh event. Publishing is strictly
// fire-and-forget: the stamp is already committed, so a publish failure is
// logged and the earn still succeeds.
func (s *stampLedgerService) publishRefresh(ctx context.Context, program *entity.LoyaltyProgram, membershipID uuid.UUID, walletPassID string, result *usecase.EarnResult) {
	event := &service.WalletPassEvent{
		Kind:            service.WalletPassEventRefresh,
		MembershipID:    membershipID.String(),
		ProgramPublicID: program.PublicID,
		WalletPassID:    walletPassID,
		StampsBalance:   result.StampsBalance,
		RewardThreshold: program.RewardThreshold,
		RewardAvailable: result.RewardUnlocked,
	}

	if err := s.publisher.PublishWalletPassEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish wallet pass refresh event",
			slog.String("membership_id", membershipID.String()),
			slog.String("error", err.Error()),
		)
	}
}
