package service

import (
	"time"

	"github.com/jinzhu/copier"

	"bloomfundr-api/internal/constant"
	"bloomfundr-api/internal/dal"
	"bloomfundr-api/internal/dao"
	"bloomfundr-api/internal/dto"
	"bloomfundr-api/internal/idgen"
	mainmodel "bloomfundr-api/internal/model/main"
	ordermodel "bloomfundr-api/internal/model/order"
	"bloomfundr-api/internal/mq"
	"bloomfundr-api/internal/notify"
	"bloomfundr-api/internal/payout"
	"bloomfundr-api/internal/system"
	rediskey "bloomfundr-api/internal/types/redis-key"
)

// payoutRunLockTTL bounds how long a crashed run can hold the campaign lock.
const payoutRunLockTTL = 5 * time.Minute

type PayoutService struct {
	mainDao  *dao.MainDao
	orderDao *dao.OrderDao
}

func NewPayoutService() *PayoutService {
	return &PayoutService{
		mainDao:  dao.NewMainDao(),
		orderDao: dao.NewOrderDao(),
	}
}

// Preview computes the payout breakdown without writing anything.
// Works on campaigns in any status, so organizers can watch the split
// build up while the campaign is still selling.
func (s *PayoutService) Preview(campaignID uint64) (dto.PayoutBreakdownVO, error) {
	var vo dto.PayoutBreakdownVO
	campaign, err := s.mainDao.GetCampaign(campaignID)
	if err != nil {
		return vo, constant.NewError(constant.CodeCampaignNotFound)
	}
	breakdown, err := s.computeBreakdown(campaign)
	if err != nil {
		return vo, err
	}
	return toBreakdownVO(campaignID, breakdown)
}

// Commit runs the campaign closeout: computes the split from stored
// order snapshots, writes one pending ledger row per party, and
// publishes payout.created for the transfer worker. Guarded by a redis
// lock so concurrent triggers (API call plus campaign.closed consumer)
// cannot double-credit.
func (s *PayoutService) Commit(campaignID uint64) (dto.PayoutCommitResp, error) {
	var resp dto.PayoutCommitResp

	campaign, err := s.mainDao.GetCampaign(campaignID)
	if err != nil {
		return resp, constant.NewError(constant.CodeCampaignNotFound)
	}
	if campaign.Status != mainmodel.CampaignStatusClosed {
		return resp, constant.NewError(constant.CodeCampaignNotClosed)
	}

	lockKey := rediskey.PayoutRunKey(campaignID)
	ok, err := dal.RedisClient.SetNX(dal.RedisCtx, lockKey, 1, payoutRunLockTTL).Result()
	if err != nil {
		return resp, constant.NewError(constant.CodeRedisError)
	}
	if !ok {
		return resp, constant.NewError(constant.CodePayoutRunInProgress)
	}
	defer dal.RedisClient.Del(dal.RedisCtx, lockKey)

	breakdown, err := s.computeBreakdown(campaign)
	if err != nil {
		return resp, err
	}
	if len(breakdown.OrderPayouts) == 0 {
		return resp, constant.NewError(constant.CodePayoutNoPaidOrders)
	}

	florist, err := s.mainDao.GetFlorist(campaign.FloristID)
	if err != nil {
		return resp, constant.NewError(constant.CodeFloristNotFound)
	}
	org, err := s.mainDao.GetOrganization(campaign.OrgID)
	if err != nil {
		return resp, constant.NewError(constant.CodeOrganizationNotFound)
	}

	snapshot := mainmodel.PayoutSnapshot{
		TotalRevenue:        breakdown.TotalRevenue,
		TotalProcessingFees: breakdown.TotalProcessingFees,
		TotalPlatformFees:   breakdown.TotalPlatformFees,
		FloristTotal:        breakdown.FloristTotal,
		OrgTotal:            breakdown.OrgTotal,
		PaidOrderCount:      len(breakdown.OrderPayouts),
	}
	rows := []mainmodel.PayoutLedger{
		{
			LedgerID:   idgen.New(),
			CampaignID: campaignID,
			Party:      mainmodel.PayoutPartyFlorist,
			PartyID:    campaign.FloristID,
			Amount:     breakdown.FloristTotal,
			Status:     mainmodel.PayoutStatusPending,
			Snapshot:   snapshot,
		},
		{
			LedgerID:   idgen.New(),
			CampaignID: campaignID,
			Party:      mainmodel.PayoutPartyOrganization,
			PartyID:    campaign.OrgID,
			Amount:     breakdown.OrgTotal,
			Status:     mainmodel.PayoutStatusPending,
			Snapshot:   snapshot,
		},
	}
	if err := s.mainDao.CreatePayoutLedger(rows); err != nil {
		if err == dao.ErrLedgerExists {
			return resp, constant.NewError(constant.CodeCampaignAlreadyClosed)
		}
		notify.NotifyPayoutAlert(system.BotChatID, "ERROR", "payout ledger write failed", campaignID,
			map[string]string{"error": err.Error()})
		return resp, constant.NewError(constant.CodePayoutLedgerFailed)
	}

	payoutRefs := map[string]string{
		mainmodel.PayoutPartyFlorist:      florist.PayoutRef,
		mainmodel.PayoutPartyOrganization: org.PayoutRef,
	}
	now := time.Now().Unix()
	for _, row := range rows {
		_ = mq.PublishPayoutCreated(dto.PayoutCreatedEvent{
			CampaignID: campaignID,
			LedgerID:   row.LedgerID,
			Party:      row.Party,
			PartyID:    row.PartyID,
			PayoutRef:  payoutRefs[row.Party],
			Amount:     row.Amount.StringFixed(2),
			CreatedAt:  now,
		})
	}

	bvo, err := toBreakdownVO(campaignID, breakdown)
	if err != nil {
		return resp, err
	}
	resp = dto.PayoutCommitResp{
		CampaignID:      campaignID,
		FloristLedgerID: rows[0].LedgerID,
		OrgLedgerID:     rows[1].LedgerID,
		Breakdown:       bvo,
	}
	return resp, nil
}

// Party returns one party's total from the current breakdown.
func (s *PayoutService) Party(req dto.PartyPayoutReq) (dto.PartyPayoutVO, error) {
	var vo dto.PartyPayoutVO
	campaign, err := s.mainDao.GetCampaign(req.CampaignID)
	if err != nil {
		return vo, constant.NewError(constant.CodeCampaignNotFound)
	}
	orders, err := s.loadOrders(campaign)
	if err != nil {
		return vo, err
	}
	amount, err := payout.PartyPayout(orders, marginConfig(campaign), payout.Party(req.Party))
	if err != nil {
		return vo, constant.NewError(constant.CodePayoutPartyInvalid)
	}
	return dto.PartyPayoutVO{CampaignID: req.CampaignID, Party: req.Party, Amount: amount}, nil
}

func (s *PayoutService) computeBreakdown(campaign *mainmodel.Campaign) (payout.Breakdown, error) {
	orders, err := s.loadOrders(campaign)
	if err != nil {
		return payout.Breakdown{}, err
	}
	return payout.CalculateCampaignPayouts(orders, marginConfig(campaign)), nil
}

func (s *PayoutService) loadOrders(campaign *mainmodel.Campaign) ([]payout.Order, error) {
	rows, err := s.orderDao.ListByCampaign(campaign.CampaignID, campaignMonths(campaign))
	if err != nil {
		return nil, constant.NewError(constant.CodeDatabaseError)
	}
	orders := make([]payout.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toPayoutOrder(row))
	}
	return orders, nil
}

func toPayoutOrder(row ordermodel.CampaignOrder) payout.Order {
	return payout.Order{
		ID:            row.OrderID,
		OrderNumber:   row.OrderNumber,
		Subtotal:      row.Subtotal,
		ProcessingFee: row.ProcessingFee,
		PlatformFee:   row.PlatformFee,
		PaymentStatus: payout.PaymentStatus(row.PayStatus),
	}
}

func marginConfig(campaign *mainmodel.Campaign) payout.MarginConfig {
	return payout.MarginConfig{
		FloristMarginPercent: campaign.FloristMarginPercent,
		OrgMarginPercent:     campaign.OrgMarginPercent,
		PlatformFeePercent:   campaign.PlatformFeePercent,
	}
}

// campaignMonths lists the months whose order shards can hold this
// campaign's orders: from the selling window start through close (or
// now for a still-active campaign).
func campaignMonths(campaign *mainmodel.Campaign) []time.Time {
	start := campaign.CreateTime
	if campaign.StartAt != nil && campaign.StartAt.Before(start) {
		start = *campaign.StartAt
	}
	end := time.Now()
	if campaign.ClosedAt != nil {
		end = *campaign.ClosedAt
	}
	if end.Before(start) {
		end = start
	}

	months := []time.Time{}
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	for !cur.After(last) {
		months = append(months, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

func toBreakdownVO(campaignID uint64, b payout.Breakdown) (dto.PayoutBreakdownVO, error) {
	var vo dto.PayoutBreakdownVO
	if err := copier.Copy(&vo, &b); err != nil {
		return vo, constant.NewError(constant.CodeInternalError)
	}
	vo.CampaignID = campaignID
	vo.PaidOrderCount = len(b.OrderPayouts)
	return vo, nil
}
