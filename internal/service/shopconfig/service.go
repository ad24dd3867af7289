package shopconfig

import (
	"context"
	"fmt"
	"strings"

	"github.com/strizhka-app/booking-service/internal/service/shopconfig/models"
)

// PaymentProvider единственный поддерживаемый платежный провайдер
const PaymentProvider = "cloudpayments"

// Config статическая часть публичной конфигурации, задается при старте
type Config struct {
	ShopName            string
	ShopTagline         string
	ContactsHTML        string
	Currency            string
	PublicID            string
	TimezoneOffset      string
	SlotStepMinutes     int
	HoldMinutes         int
	CancelDeadlineHours int
}

// Service собирает публичную конфигурацию витрины
type Service struct {
	catalogRepo CatalogRepository
	cfg         Config
	logger      Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(catalogRepo CatalogRepository, cfg Config, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// Get возвращает публичную конфигурацию: параметры магазина и виджета оплаты
// плюс актуальные списки услуг и мастеров для формы записи
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	services, err := s.catalogRepo.ListActiveServices(ctx)
	if err != nil {
		s.logger.Error("Get: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: Get - failed to list services: %v", ErrInternal, err)
	}

	barbers, err := s.catalogRepo.ListActiveBarbers(ctx)
	if err != nil {
		s.logger.Error("Get: failed to list barbers: %v", err)
		return nil, fmt.Errorf("%w: Get - failed to list barbers: %v", ErrInternal, err)
	}

	return &models.ConfigResponse{
		ShopName:              s.cfg.ShopName,
		ShopTagline:           s.cfg.ShopTagline,
		ContactsHTML:          s.cfg.ContactsHTML,
		Currency:              strings.ToLower(s.cfg.Currency),
		PaymentProvider:       PaymentProvider,
		CloudPaymentsPublicID: s.cfg.PublicID,
		TimezoneOffset:        s.cfg.TimezoneOffset,
		SlotStepMin:           s.cfg.SlotStepMinutes,
		HoldMinutes:           s.cfg.HoldMinutes,
		CancelDeadlineHours:   s.cfg.CancelDeadlineHours,
		Services:              models.FromDomainServices(services),
		Barbers:               models.FromDomainBarbers(barbers),
	}, nil
}
