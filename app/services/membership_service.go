package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Rakhulsr/cloth-cafe/app/metrics"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"github.com/Rakhulsr/cloth-cafe/app/utils/calc"
	"go.uber.org/zap"
)

var (
	ErrMembershipRequestNotFound = errors.New("membership request not found")
	ErrRequestDecided            = errors.New("membership request has already been decided")
	ErrMemberNotFound            = errors.New("member not found")
	ErrCodeGeneration            = errors.New("could not generate a unique membership code")
)

const maxCodeAttempts = 10

const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
	DecisionRevoked  = "revoked"
)

type MembershipApplication struct {
	CustomerName  string               `json:"customer_name" validate:"required,notblank,max=255"`
	Email         string               `json:"email" validate:"required,email"`
	Phone         string               `json:"phone" validate:"required,notblank,max=20"`
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof=bKash Nagad Rocket"`
	TransactionID string               `json:"transaction_id" validate:"required,notblank,max=64"`
}

type MembershipRequestResult struct {
	Request          models.MembershipRequest `json:"request"`
	NotificationSent bool                     `json:"notification_sent"`
}

type ProfileView struct {
	models.UserProfile
	Points int64 `json:"points"`
}

type MembershipService struct {
	store   *store.Store
	relay   NotificationRelay
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
	newCode func() string
}

func NewMembershipService(st *store.Store, relay NotificationRelay, m *metrics.Metrics, logger *zap.Logger) *MembershipService {
	return &MembershipService{
		store:   st,
		relay:   relay,
		metrics: m,
		logger:  logger,
		now:     time.Now,
		newCode: newMembershipCode,
	}
}

// Request records a pending application and forwards it to the relay.
func (s *MembershipService) Request(ctx context.Context, app MembershipApplication) (*MembershipRequestResult, error) {
	if err := validate.Struct(app); err != nil {
		return nil, err
	}

	req := models.MembershipRequest{
		ID:            newMembershipRequestID(),
		CustomerName:  strings.TrimSpace(app.CustomerName),
		Email:         strings.TrimSpace(app.Email),
		Phone:         strings.TrimSpace(app.Phone),
		PaymentMethod: app.PaymentMethod,
		TransactionID: strings.TrimSpace(app.TransactionID),
		Status:        models.MembershipPending,
		CreatedAt:     s.now(),
	}

	err := s.store.Update(ctx, func(st *store.State) error {
		st.MembershipRequests = append([]models.MembershipRequest{req}, st.MembershipRequests...)
		return nil
	}, store.KeyMembershipRequests)
	if err != nil {
		return nil, err
	}

	s.logger.Info("membership requested", zap.String("request_id", req.ID))
	sent := notify(ctx, s.relay, s.metrics, s.logger, NewMembershipRequestedPayload(req)) == nil
	return &MembershipRequestResult{Request: req, NotificationSent: sent}, nil
}

func (s *MembershipService) Requests() []models.MembershipRequest {
	return s.store.Snapshot().MembershipRequests
}

func (s *MembershipService) Members() []models.Member {
	return s.store.Snapshot().Members
}

func codeTaken(members []models.Member, code string) bool {
	for _, m := range members {
		if strings.EqualFold(m.MembershipCode, code) {
			return true
		}
	}
	return false
}

func (s *MembershipService) uniqueCode(members []models.Member) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := s.newCode()
		if !codeTaken(members, code) {
			return code, nil
		}
	}
	return "", ErrCodeGeneration
}

func (s *MembershipService) decide(ctx context.Context, id string, keys []store.Key, fn func(st *store.State, req *models.MembershipRequest) error) error {
	return s.store.Update(ctx, func(st *store.State) error {
		for i := range st.MembershipRequests {
			req := &st.MembershipRequests[i]
			if req.ID != id {
				continue
			}
			if req.Status != models.MembershipPending {
				return ErrRequestDecided
			}
			now := s.now()
			req.DecidedAt = &now
			return fn(st, req)
		}
		return ErrMembershipRequestNotFound
	}, keys...)
}

// Approve accepts a pending request and issues exactly one member with a
// fresh code in the same write.
func (s *MembershipService) Approve(ctx context.Context, id string) (models.Member, error) {
	var member models.Member
	err := s.decide(ctx, id, []store.Key{store.KeyMembershipRequests, store.KeyMembers}, func(st *store.State, req *models.MembershipRequest) error {
		code, err := s.uniqueCode(st.Members)
		if err != nil {
			return err
		}
		req.Status = models.MembershipApproved
		member = models.Member{
			ID:             newMemberID(),
			RequestID:      req.ID,
			Name:           req.CustomerName,
			Email:          req.Email,
			Phone:          req.Phone,
			MembershipCode: code,
			JoinedAt:       *req.DecidedAt,
		}
		st.Members = append(st.Members, member)
		return nil
	})
	if err != nil {
		return models.Member{}, err
	}

	s.metrics.RecordMembershipDecision(DecisionApproved)
	s.logger.Info("membership approved", zap.String("request_id", id), zap.String("member_id", member.ID))
	return member, nil
}

func (s *MembershipService) Reject(ctx context.Context, id string) (models.MembershipRequest, error) {
	var decided models.MembershipRequest
	err := s.decide(ctx, id, []store.Key{store.KeyMembershipRequests}, func(_ *store.State, req *models.MembershipRequest) error {
		req.Status = models.MembershipRejected
		decided = *req
		return nil
	})
	if err != nil {
		return models.MembershipRequest{}, err
	}

	s.metrics.RecordMembershipDecision(DecisionRejected)
	s.logger.Info("membership rejected", zap.String("request_id", id))
	return decided, nil
}

// Revoke deletes a member. The request that created it is left as it was.
// A local profile using the revoked code loses its elite status.
func (s *MembershipService) Revoke(ctx context.Context, memberID string) error {
	err := s.store.Update(ctx, func(st *store.State) error {
		kept := make([]models.Member, 0, len(st.Members))
		var revoked *models.Member
		for i, m := range st.Members {
			if m.ID == memberID {
				revoked = &st.Members[i]
				continue
			}
			kept = append(kept, m)
		}
		if revoked == nil {
			return ErrMemberNotFound
		}
		if st.Profile.MembershipCode != "" && strings.EqualFold(st.Profile.MembershipCode, revoked.MembershipCode) {
			st.Profile = models.UserProfile{}
		}
		st.Members = kept
		return nil
	}, store.KeyMembers, store.KeyUserProfile)
	if err != nil {
		return err
	}

	s.metrics.RecordMembershipDecision(DecisionRevoked)
	s.logger.Info("member revoked", zap.String("member_id", memberID))
	return nil
}

func (s *MembershipService) ValidateCode(code string) bool {
	return calc.ValidateMembershipCode(s.store.Snapshot().Members, code)
}

func (s *MembershipService) Profile() ProfileView {
	st := s.store.Snapshot()
	return ProfileView{UserProfile: st.Profile, Points: st.Points}
}

// ActivateProfile marks the local shopper as elite using an issued code.
func (s *MembershipService) ActivateProfile(ctx context.Context, code string) (ProfileView, error) {
	var view ProfileView
	err := s.store.Update(ctx, func(st *store.State) error {
		code = strings.TrimSpace(code)
		for _, m := range st.Members {
			if strings.EqualFold(m.MembershipCode, code) {
				st.Profile = models.UserProfile{IsElite: true, MembershipCode: m.MembershipCode}
				view = ProfileView{UserProfile: st.Profile, Points: st.Points}
				return nil
			}
		}
		return ErrInvalidMembershipCode
	}, store.KeyUserProfile)
	if err != nil {
		return ProfileView{}, err
	}
	return view, nil
}
