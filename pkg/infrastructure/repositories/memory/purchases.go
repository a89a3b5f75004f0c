package memory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
	"github.com/aneliseestevam/structa-web/pkg/infrastructure/events"
)

// SystemActor is the sentinel performer recorded on stock movements
// created by automatic delivery reconciliation
const SystemActor = "system/auto-delivery"

// AddPurchase appends a purchase to the collection
func (s *Store) AddPurchase(purchase *entities.Purchase) {
	s.purchases = append(s.purchases, purchase)
}

// GetPurchase returns the purchase with the given id
func (s *Store) GetPurchase(id string) (*entities.Purchase, error) {
	for _, purchase := range s.purchases {
		if purchase.ID == id {
			return purchase, nil
		}
	}
	return nil, fmt.Errorf("purchase %s: %w", id, ErrNotFound)
}

// Purchases returns all purchases in insertion order
func (s *Store) Purchases() []*entities.Purchase {
	return append([]*entities.Purchase(nil), s.purchases...)
}

// PurchasesByProject returns the purchases of a project, preserving
// insertion order
func (s *Store) PurchasesByProject(projectID string) []*entities.Purchase {
	var purchases []*entities.Purchase
	for _, purchase := range s.purchases {
		if purchase.ProjectID == projectID {
			purchases = append(purchases, purchase)
		}
	}
	return purchases
}

// LoadPurchases loads purchases into the store. Loading never triggers
// delivery reconciliation, so already-delivered purchases seed cleanly.
func (s *Store) LoadPurchases(purchases []*entities.Purchase) error {
	for _, purchase := range purchases {
		s.AddPurchase(purchase)
	}
	return nil
}

// UpdatePurchase merges the given fields into the matching purchase and
// refreshes its UpdatedAt timestamp. A transition into the delivered
// status runs stock reconciliation before this call returns; a purchase
// that is already delivered only receives the field merge.
func (s *Store) UpdatePurchase(id string, update entities.PurchaseUpdate) error {
	purchase, err := s.GetPurchase(id)
	if err != nil {
		return err
	}

	wasDelivered := purchase.Status == entities.PurchaseDelivered

	if update.Supplier != nil {
		purchase.Supplier = *update.Supplier
	}
	if update.PurchaseDate != nil {
		purchase.PurchaseDate = *update.PurchaseDate
	}
	if update.TotalCost != nil {
		purchase.TotalCost = *update.TotalCost
	}
	if update.InvoiceNumber != nil {
		purchase.InvoiceNumber = *update.InvoiceNumber
	}
	if update.Items != nil {
		purchase.Items = update.Items
	}
	if update.Status != nil {
		purchase.Status = *update.Status
	}
	purchase.UpdatedAt = s.now()

	if purchase.Status == entities.PurchaseDelivered && !wasDelivered {
		s.reconcileDelivery(purchase)
	}

	return nil
}

// DeletePurchase removes the purchase. Items are owned by the purchase
// and go with it; nothing else cascades.
func (s *Store) DeletePurchase(id string) error {
	if _, err := s.GetPurchase(id); err != nil {
		return err
	}

	var purchases []*entities.Purchase
	for _, purchase := range s.purchases {
		if purchase.ID != id {
			purchases = append(purchases, purchase)
		}
	}
	s.purchases = purchases

	return nil
}

// reconcileDelivery applies the purchase's items to material stock and
// records one synthetic "in" movement per item. It runs at most once per
// purchase; the delivered-status transition check in UpdatePurchase is
// the idempotence guard.
func (s *Store) reconcileDelivery(purchase *entities.Purchase) {
	now := s.now()

	for _, item := range purchase.Items {
		if material, err := s.GetMaterial(item.MaterialID); err == nil {
			material.Stock += item.Quantity
			material.UpdatedAt = now
		}

		s.movements = append(s.movements, &entities.StockMovement{
			ID:          uuid.NewString(),
			MaterialID:  item.MaterialID,
			ProjectID:   purchase.ProjectID,
			Kind:        entities.MovementIn,
			Quantity:    item.Quantity,
			Reason:      deliveryReason(purchase),
			Date:        now,
			PerformedBy: SystemActor,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	delivered := now
	purchase.DeliveredAt = &delivered

	suffix := "items"
	if len(purchase.Items) == 1 {
		suffix = "item"
	}
	s.publish(events.Notification{
		Kind:      events.KindSuccess,
		Title:     "Purchase delivered",
		Message:   fmt.Sprintf("Stock updated automatically with %d %s from purchase %s", len(purchase.Items), suffix, purchaseRef(purchase)),
		AutoClose: true,
		Time:      now,
	})
}

func deliveryReason(purchase *entities.Purchase) string {
	if purchase.InvoiceNumber != "" {
		return fmt.Sprintf("Purchase delivery (invoice %s)", purchase.InvoiceNumber)
	}
	return fmt.Sprintf("Purchase delivery #%s", purchase.ID)
}

func purchaseRef(purchase *entities.Purchase) string {
	if purchase.InvoiceNumber != "" {
		return fmt.Sprintf("(invoice %s)", purchase.InvoiceNumber)
	}
	return "#" + purchase.ID
}
