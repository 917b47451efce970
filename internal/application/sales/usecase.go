package sales

import (
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/application/inventory"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
	"github.com/tu-usuario/inventario-pos/pkg/logger"
)

// UseCase flujo de trabajo de órdenes de venta: creación con verificación de
// disponibilidad y descuento de stock, cancelación con reposición, y consultas.
type UseCase struct {
	orderRepo    repository.SalesOrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	stock        *inventory.UseCase
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orderRepo repository.SalesOrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	stock *inventory.UseCase,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		stock:        stock,
		log:          log,
	}
}

// GetByID obtiene una orden por ID; nil si no existe.
func (uc *UseCase) GetByID(id string) (*entity.SalesOrder, error) {
	return uc.orderRepo.GetByID(id)
}

// List lista órdenes con filtros exactos y paginación.
func (uc *UseCase) List(filter repository.SalesOrderFilter) ([]*entity.SalesOrder, error) {
	return uc.orderRepo.List(filter)
}

// Update actualiza los campos editables de una orden: cliente, estado y método
// de pago, y notas. El estado del flujo y los ítems no se tocan por esta vía.
func (uc *UseCase) Update(id string, in dto.UpdateSalesOrderRequest) (*entity.SalesOrder, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerID != nil {
		order.CustomerID = *in.CustomerID
	}
	if in.CustomerName != nil {
		order.CustomerName = *in.CustomerName
	}
	if in.PaymentStatus != nil {
		if !validPaymentStatus(*in.PaymentStatus) {
			return nil, domain.ErrInvalidInput
		}
		order.PaymentStatus = *in.PaymentStatus
	}
	if in.PaymentMethod != nil {
		order.PaymentMethod = *in.PaymentMethod
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func validPaymentStatus(s string) bool {
	switch s {
	case entity.PaymentStatusPending, entity.PaymentStatusPaid, entity.PaymentStatusPartial:
		return true
	}
	return false
}
