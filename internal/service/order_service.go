package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bloomfundr-api/internal/config"
	"bloomfundr-api/internal/constant"
	"bloomfundr-api/internal/dao"
	"bloomfundr-api/internal/dto"
	"bloomfundr-api/internal/idgen"
	mainmodel "bloomfundr-api/internal/model/main"
	ordermodel "bloomfundr-api/internal/model/order"
	"bloomfundr-api/internal/utils"
)

const orderNumberPrefix = "BF"

// webhookFreshness bounds how old a provider callback may be.
const webhookFreshness = 15 * time.Minute

type OrderService struct {
	mainDao  *dao.MainDao
	orderDao *dao.OrderDao
}

func NewOrderService() *OrderService {
	return &OrderService{
		mainDao:  dao.NewMainDao(),
		orderDao: dao.NewOrderDao(),
	}
}

// Create records a supporter order against an active campaign. The
// subtotal and both fee amounts are computed once here and stored on
// the row; payout math later reads these snapshots as-is.
func (s *OrderService) Create(req dto.CreateOrderReq) (dto.OrderVO, error) {
	var vo dto.OrderVO

	campaign, err := s.mainDao.GetCampaign(req.CampaignID)
	if err != nil {
		return vo, constant.NewError(constant.CodeCampaignNotFound)
	}
	if campaign.Status != mainmodel.CampaignStatusActive {
		return vo, constant.NewError(constant.CodeCampaignStatusInvalid)
	}
	product, err := s.mainDao.GetCampaignProduct(req.ProductID)
	if err != nil {
		return vo, constant.NewError(constant.CodeProductNotFound)
	}
	if product.CampaignID != req.CampaignID || !product.Active {
		return vo, constant.NewError(constant.CodeProductNotFound)
	}

	subtotal := product.RetailPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
	processingFee := utils.RoundCents(utils.PctOf(subtotal, campaign.ProcessingFeePercent))
	platformFee := utils.RoundCents(utils.PctOf(subtotal, campaign.PlatformFeePercent))

	now := time.Now()
	orderID := idgen.New()
	order := ordermodel.CampaignOrder{
		OrderID:       orderID,
		OrderNumber:   orderNumberPrefix + strconv.FormatUint(orderID, 10),
		CampaignID:    req.CampaignID,
		ProductID:     req.ProductID,
		SellerName:    req.SellerName,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Quantity:      req.Quantity,
		Subtotal:      subtotal,
		ProcessingFee: processingFee,
		PlatformFee:   platformFee,
		PayStatus:     ordermodel.PayStatusPending,
		CreateTime:    &now,
	}
	ctx, cancel := context.WithTimeout(context.Background(), orderCreateTimeout())
	defer cancel()
	if err := s.orderDao.Insert(ctx, &order, now); err != nil {
		return vo, constant.NewError(constant.CodeDatabaseError)
	}
	return s.toVO(&order)
}

// orderCreateTimeout bounds the shard insert at order intake.
func orderCreateTimeout() time.Duration {
	return time.Duration(config.C.Order.CreateTimeoutSec) * time.Second
}

func (s *OrderService) Get(orderNumber string) (dto.OrderVO, error) {
	var vo dto.OrderVO
	orderID, ts, err := resolveOrderNumber(orderNumber)
	if err != nil {
		return vo, err
	}
	order, err := s.orderDao.GetByID(orderID, ts)
	if err != nil {
		return vo, constant.NewError(constant.CodeOrderNotFound)
	}
	return s.toVO(order)
}

// HandleWebhook applies a payment provider callback. The signature
// covers every field except sign itself; tran_datetime must fall
// inside the freshness window to stop replays.
func (s *OrderService) HandleWebhook(req dto.PaymentWebhookReq) error {
	params := map[string]string{
		"order_number":  req.OrderNumber,
		"status":        req.Status,
		"amount":        req.Amount,
		"tran_datetime": req.TranDatetime,
		"sign":          req.Sign,
	}
	if req.PayRef != "" {
		params["pay_ref"] = req.PayRef
	}
	if !utils.VerifySign(params, config.C.Security.WebhookSecret) {
		return constant.NewError(constant.CodeSignatureError)
	}
	tranTime, err := utils.ParseTimestamp(req.TranDatetime)
	if err != nil {
		return constant.NewError(constant.CodeParamsFormatError)
	}
	if !utils.IsTimestampValid(tranTime, webhookFreshness) {
		return constant.NewError(constant.CodeStaleRequest)
	}

	orderID, ts, err := resolveOrderNumber(req.OrderNumber)
	if err != nil {
		return err
	}
	order, err := s.orderDao.GetByID(orderID, ts)
	if err != nil {
		return constant.NewError(constant.CodeOrderNotFound)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.Equal(order.Subtotal) {
		return constant.NewError(constant.CodeOrderAmountInvalid)
	}

	if err := s.orderDao.MarkPayStatus(orderID, ts, req.Status, req.PayRef); err != nil {
		if err == gorm.ErrRecordNotFound {
			// The expected source status was not found: already moved.
			if req.Status == ordermodel.PayStatusRefunded {
				return constant.NewError(constant.CodeOrderStatusInvalid)
			}
			return constant.NewError(constant.CodeOrderAlreadyPaid)
		}
		return constant.NewError(constant.CodeDatabaseError)
	}
	return nil
}

// resolveOrderNumber parses "BF<order_id>" and recovers the creation
// time embedded in the snowflake id, which fixes the shard table.
func resolveOrderNumber(orderNumber string) (uint64, time.Time, error) {
	if !strings.HasPrefix(orderNumber, orderNumberPrefix) {
		return 0, time.Time{}, constant.NewError(constant.CodeParamsFormatError)
	}
	orderID, err := strconv.ParseUint(orderNumber[len(orderNumberPrefix):], 10, 64)
	if err != nil {
		return 0, time.Time{}, constant.NewError(constant.CodeParamsFormatError)
	}
	return orderID, idgen.TimeOf(orderID), nil
}

func (s *OrderService) toVO(order *ordermodel.CampaignOrder) (dto.OrderVO, error) {
	var vo dto.OrderVO
	if err := copier.Copy(&vo, order); err != nil {
		return vo, constant.NewError(constant.CodeInternalError)
	}
	vo.CreatedAt = order.CreateTime
	return vo, nil
}
