package services

import (
	"fmt"
	"order_manager/internal/models"
	"order_manager/internal/repository"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. Reads return detached copies, like gorm does;
// only Update/Create/Delete touch the shared state.

type fakeState struct {
	orders        map[uint]*models.Order
	items         map[uint]*models.OrderItem
	products      map[uint]*models.Product
	cancelReasons []*models.OrderCancelReason
	nextItemID    uint
}

func newFakeState() *fakeState {
	return &fakeState{
		orders:     make(map[uint]*models.Order),
		items:      make(map[uint]*models.OrderItem),
		products:   make(map[uint]*models.Product),
		nextItemID: 1,
	}
}

func (s *fakeState) addOrder(order models.Order) {
	s.orders[order.ID] = &order
}

func (s *fakeState) addProduct(product models.Product) {
	s.products[product.ID] = &product
}

func (s *fakeState) addItem(item models.OrderItem) {
	if item.ID == 0 {
		item.ID = s.nextItemID
	}
	if item.ID >= s.nextItemID {
		s.nextItemID = item.ID + 1
	}
	s.items[item.ID] = &item
}

type fakeOrderRepo struct {
	s *fakeState
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	cp := *order
	r.s.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) GetByIDs(ids []uint) ([]models.Order, error) {
	var orders []models.Order
	for _, id := range ids {
		if order, ok := r.s.orders[id]; ok {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) GetByStore(storeID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.s.orders {
		if order.StoreID == storeID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	cp := *order
	r.s.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) DeleteByIDs(ids []uint) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := r.s.orders[id]; ok {
			delete(r.s.orders, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeOrderRepo) CountByStore(storeID uuid.UUID, month *int) (int64, error) {
	var count int64
	for _, order := range r.s.orders {
		if order.StoreID != storeID {
			continue
		}
		if month != nil && int(order.CreatedAt.Month()) != *month {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeOrderRepo) LastOrderNumber(storeID uuid.UUID, day time.Time) (int, error) {
	last := 0
	for _, order := range r.s.orders {
		if order.StoreID != storeID {
			continue
		}
		y1, m1, d1 := order.CreatedAt.Date()
		y2, m2, d2 := day.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			continue
		}
		if order.OrderNumber > last {
			last = order.OrderNumber
		}
	}
	return last, nil
}

func (r *fakeOrderRepo) CreateCancelReason(reason *models.OrderCancelReason) error {
	cp := *reason
	r.s.cancelReasons = append(r.s.cancelReasons, &cp)
	return nil
}

type fakeOrderItemRepo struct {
	s *fakeState
}

func (r *fakeOrderItemRepo) Create(item *models.OrderItem) error {
	item.ID = r.s.nextItemID
	r.s.nextItemID++
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeOrderItemRepo) GetByID(id uint) (*models.OrderItem, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *fakeOrderItemRepo) GetByOrderID(orderID uint) ([]*models.OrderItem, error) {
	var items []*models.OrderItem
	for _, item := range r.s.items {
		if item.OrderID == orderID {
			cp := *item
			items = append(items, &cp)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeOrderItemRepo) Update(item *models.OrderItem) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeOrderItemRepo) Delete(id uint) error {
	delete(r.s.items, id)
	return nil
}

func (r *fakeOrderItemRepo) doneOrders(storeID uuid.UUID, month *int) map[uint]bool {
	done := make(map[uint]bool)
	for _, order := range r.s.orders {
		if order.StoreID != storeID || order.Status != models.OrderDone {
			continue
		}
		if month != nil {
			if order.DoneUpdated == nil || int(order.DoneUpdated.Month()) != *month {
				continue
			}
		}
		done[order.ID] = true
	}
	return done
}

func (r *fakeOrderItemRepo) totalsByOrder(storeID uuid.UUID, month *int, price func(*models.OrderItem) int64) ([]repository.OrderTotal, error) {
	done := r.doneOrders(storeID, month)
	sums := make(map[uint]float64)
	for _, item := range r.s.items {
		if done[item.OrderID] {
			sums[item.OrderID] += float64(int64(item.Qty) * price(item))
		}
	}

	var totals []repository.OrderTotal
	for orderID, total := range sums {
		totals = append(totals, repository.OrderTotal{OrderID: orderID, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].OrderID < totals[j].OrderID })
	return totals, nil
}

func (r *fakeOrderItemRepo) CostTotalsByOrder(storeID uuid.UUID, month *int) ([]repository.OrderTotal, error) {
	return r.totalsByOrder(storeID, month, func(item *models.OrderItem) int64 {
		return r.s.products[item.ProductID].Price
	})
}

func (r *fakeOrderItemRepo) RevenueTotalsByOrder(storeID uuid.UUID, month *int) ([]repository.OrderTotal, error) {
	return r.totalsByOrder(storeID, month, func(item *models.OrderItem) int64 {
		return item.Price
	})
}

func (r *fakeOrderItemRepo) TotalWeight(orderID uint) (int, error) {
	grams := 0
	for _, item := range r.s.items {
		if item.OrderID == orderID {
			grams += item.Qty * r.s.products[item.ProductID].Weight
		}
	}
	return grams, nil
}

func (r *fakeOrderItemRepo) TotalQtySold(storeID uuid.UUID, month *int) (int64, error) {
	done := r.doneOrders(storeID, month)
	var qty int64
	for _, item := range r.s.items {
		if done[item.OrderID] {
			qty += int64(item.Qty)
		}
	}
	return qty, nil
}

type fakeProductRepo struct {
	s *fakeState
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	product, ok := r.s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *product
	return &cp, nil
}

func (r *fakeProductRepo) GetByStore(storeID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	for _, product := range r.s.products {
		if product.StoreID == storeID && !product.IsDeleted {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) Update(product *models.Product) error {
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) CountByStore(storeID uuid.UUID) (int64, error) {
	var count int64
	for _, product := range r.s.products {
		if product.StoreID == storeID && !product.IsDeleted {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByWhatsAppNumber(whatsapp string) (*models.User, error) {
	for _, user := range r.users {
		if user.WhatsAppNumber == whatsapp {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type fakeStoreRepo struct {
	stores map[uuid.UUID]*models.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: make(map[uuid.UUID]*models.Store)}
}

func (r *fakeStoreRepo) Create(store *models.Store) error {
	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}
	cp := *store
	r.stores[store.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) GetByID(id uuid.UUID) (*models.Store, error) {
	store, ok := r.stores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *store
	return &cp, nil
}

func (r *fakeStoreRepo) GetByOwner(ownerID uint) (*models.Store, error) {
	for _, store := range r.stores {
		if store.OwnerID == ownerID {
			cp := *store
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStoreRepo) Update(store *models.Store) error {
	cp := *store
	r.stores[store.ID] = &cp
	return nil
}

type fakeOTPTokenRepo struct {
	tokens map[uint]*models.OTPToken
	nextID uint
}

func newFakeOTPTokenRepo() *fakeOTPTokenRepo {
	return &fakeOTPTokenRepo{tokens: make(map[uint]*models.OTPToken), nextID: 1}
}

func (r *fakeOTPTokenRepo) Create(token *models.OTPToken) error {
	token.ID = r.nextID
	r.nextID++
	cp := *token
	r.tokens[token.ID] = &cp
	return nil
}

func (r *fakeOTPTokenRepo) GetUnverifiedByEvent(userID uint, event models.OTPEvent) ([]models.OTPToken, error) {
	var tokens []models.OTPToken
	for _, token := range r.tokens {
		if token.UserID == userID && token.Event == event && token.VerifiedAt == nil {
			tokens = append(tokens, *token)
		}
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].CreatedAt.After(tokens[j].CreatedAt) })
	return tokens, nil
}

func (r *fakeOTPTokenRepo) GetUnverifiedByCode(userID uint, code string) (*models.OTPToken, error) {
	for _, token := range r.tokens {
		if token.UserID == userID && token.Code == code && token.VerifiedAt == nil {
			cp := *token
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOTPTokenRepo) Update(token *models.OTPToken) error {
	cp := *token
	r.tokens[token.ID] = &cp
	return nil
}

type fakeConfigRepo struct {
	configs map[string]*models.Config
	nextID  uint
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: make(map[string]*models.Config), nextID: 1}
}

func (r *fakeConfigRepo) GetByKey(key string) (*models.Config, error) {
	config, ok := r.configs[key]
	if !ok {
		return nil, nil
	}
	cp := *config
	return &cp, nil
}

func (r *fakeConfigRepo) Create(config *models.Config) error {
	config.ID = r.nextID
	r.nextID++
	cp := *config
	r.configs[config.Key] = &cp
	return nil
}

func (r *fakeConfigRepo) Update(config *models.Config) error {
	cp := *config
	r.configs[config.Key] = &cp
	return nil
}

type sentMessage struct {
	Phone   string
	Message string
}

type fakeWhatsAppService struct {
	sent     []sentMessage
	response string
}

func (f *fakeWhatsAppService) SendMessage(phone, message string) (string, error) {
	f.sent = append(f.sent, sentMessage{Phone: phone, Message: message})
	return f.response, nil
}

type fakeCooldownStore struct {
	active map[string]bool
}

func newFakeCooldownStore() *fakeCooldownStore {
	return &fakeCooldownStore{active: make(map[string]bool)}
}

func (f *fakeCooldownStore) key(event string, userID uint) string {
	return fmt.Sprintf("%s:%d", event, userID)
}

func (f *fakeCooldownStore) SetOTPCooldown(event string, userID uint, ttl time.Duration) error {
	f.active[f.key(event, userID)] = true
	return nil
}

func (f *fakeCooldownStore) InOTPCooldown(event string, userID uint) (bool, error) {
	return f.active[f.key(event, userID)], nil
}
