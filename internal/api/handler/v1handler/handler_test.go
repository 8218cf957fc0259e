package v1handler_test

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aboldguess/Nichifier/internal/api/handler/v1handler"
	"github.com/aboldguess/Nichifier/internal/auth"
	"github.com/aboldguess/Nichifier/internal/billing"
	"github.com/aboldguess/Nichifier/internal/newsletter"
	"github.com/aboldguess/Nichifier/internal/niche"
	"github.com/aboldguess/Nichifier/internal/subscription"
	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/logger"
	mocknewsfeed "github.com/aboldguess/Nichifier/pkg/newsfeed/mock"
	mockstorage "github.com/aboldguess/Nichifier/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type testAPI struct {
	storage *mockstorage.MockStorage
	router  http.Handler
	priv    *rsa.PrivateKey
}

func setupAPI(t *testing.T) (*gomock.Controller, *testAPI) {
	t.Helper()

	priv, pubPEM := genRSAKeys(t)
	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	authSvc, err := auth.New(st, auth.Options{
		PrivateKey: string(privPEM),
		TokenTTL:   time.Hour,
	})
	require.NoError(t, err)

	billSvc := billing.New(st, billing.Options{
		DefaultFeePercent: decimal.RequireFromString("15.00"),
		DefaultMinimumFee: decimal.RequireFromString("1.00"),
		DefaultCurrency:   "GBP",
	})
	newsSvc := newsletter.New(st, mocknewsfeed.NewMockClient(ctrl), nil, newsletter.Options{
		FeedURLs:     []string{"https://feeds.example.com/stories.json"},
		ArticleLimit: 5,
		FetchTimeout: time.Second,
	})

	h := v1handler.New(v1handler.Deps{
		Auth:          authSvc,
		Billing:       billSvc,
		Niches:        niche.New(st, billSvc),
		Subscriptions: subscription.New(st, billSvc),
		Newsletters:   newsSvc,
	})

	sec := newSecHandlerForTest(t, pubPEM)

	return ctrl, &testAPI{
		storage: st,
		router:  h.Routes(sec),
		priv:    priv,
	}
}

func (a *testAPI) bearer(t *testing.T, userID domain.UserID) string {
	t.Helper()
	now := time.Now()

	return "Bearer " + signJWTRS256(t, a.priv, uuid.UUID(userID).String(), now, now.Add(time.Hour))
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(b)
}

func TestRegisterRoute(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	api.storage.EXPECT().StoreUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, user domain.User) (*domain.User, error) {
			user.ID = domain.UserID(uuid.New())

			return &user, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/auth/register", jsonBody(t, map[string]string{
		"email":    "Reader@Example.com",
		"fullName": "Avid Reader",
		"password": "correct-horse-battery",
	}))
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "reader@example.com", resp.User.Email)
	require.Equal(t, domain.RoleSubscriber, resp.User.Role)
}

func TestRegisterRoute_InvalidBody(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListNichesRoute(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	api.storage.EXPECT().Niches(gomock.Any()).Return([]domain.Niche{
		{ID: domain.NicheID(uuid.New()), Name: "Climate"},
		{ID: domain.NicheID(uuid.New()), Name: "Fintech"},
	}, nil)

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/niches", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var niches []domain.Niche
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &niches))
	require.Len(t, niches, 2)
}

func TestNicheIDRoundTrip(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	id := domain.NicheID(uuid.New())
	api.storage.EXPECT().Niches(gomock.Any()).Return([]domain.Niche{
		{ID: id, Name: "Climate"},
	}, nil)
	api.storage.EXPECT().NicheByID(gomock.Any(), id).Return(&domain.Niche{ID: id, Name: "Climate"}, nil)

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/niches", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// ids render as UUID strings, not byte arrays
	require.Contains(t, rec.Body.String(), `"id":"`+id.String()+`"`)

	// and the rendered id is usable as a path parameter
	var niches []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &niches))
	require.Len(t, niches, 1)

	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/niches/"+niches[0].ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetNicheRoute_InvalidID(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/niches/not-a-uuid", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNicheRoute_NotFound(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	id := uuid.New()
	api.storage.EXPECT().NicheByID(gomock.Any(), domain.NicheID(id)).Return(nil, nil)

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/niches/"+id.String(), nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMeRoute_RequiresAuth(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeRoute(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	user := domain.User{
		ID:       domain.UserID(uuid.New()),
		Email:    "reader@example.com",
		FullName: "Avid Reader",
		Role:     domain.RoleSubscriber,
	}
	api.storage.EXPECT().UserByID(gomock.Any(), user.ID).Return(&user, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", api.bearer(t, user.ID))

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, user.Email, got.Email)
}

func TestAdminSettingsRoute_ForbiddenForSubscribers(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	user := domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleSubscriber}
	api.storage.EXPECT().UserByID(gomock.Any(), user.ID).Return(&user, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	req.Header.Set("Authorization", api.bearer(t, user.ID))

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminSettingsRoute(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	user := domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin}
	api.storage.EXPECT().UserByID(gomock.Any(), user.ID).Return(&user, nil)
	api.storage.EXPECT().PlatformSettings(gomock.Any()).Return(&domain.PlatformSettings{
		FeePercent:   decimal.RequireFromString("15.00"),
		MinimumFee:   decimal.RequireFromString("1.00"),
		CurrencyCode: "GBP",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	req.Header.Set("Authorization", api.bearer(t, user.ID))

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.PlatformSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "GBP", got.CurrencyCode)
}

func TestRequestIssueRoute(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	user := domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin}
	niche := domain.Niche{
		ID:                domain.NicheID(uuid.New()),
		Name:              "Fintech",
		NewsletterCadence: domain.CadenceDaily,
		ReportCadence:     domain.CadenceMonthly,
	}

	api.storage.EXPECT().UserByID(gomock.Any(), user.ID).Return(&user, nil)
	api.storage.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	api.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)

	req := httptest.NewRequest(http.MethodPost,
		"/niches/"+uuid.UUID(niche.ID).String()+"/issues",
		jsonBody(t, map[string]string{"kind": "newsletter"}))
	req.Header.Set("Authorization", api.bearer(t, user.ID))

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp struct {
		Queued bool `json:"queued"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Queued)
}

func TestUpsertSubscriptionRoute(t *testing.T) {
	ctrl, api := setupAPI(t)
	defer ctrl.Finish()

	user := domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleSubscriber}
	niche := domain.Niche{
		ID:                domain.NicheID(uuid.New()),
		Name:              "Fintech",
		NewsletterPrice:   decimal.RequireFromString("10.00"),
		ReportPrice:       decimal.RequireFromString("25.00"),
		CurrencyCode:      "GBP",
		NewsletterCadence: domain.CadenceWeekly,
		ReportCadence:     domain.CadenceMonthly,
	}

	api.storage.EXPECT().UserByID(gomock.Any(), user.ID).Return(&user, nil)
	api.storage.EXPECT().NicheByID(gomock.Any(), niche.ID).Return(&niche, nil)
	api.storage.EXPECT().UpsertSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, sub domain.Subscription) (*domain.Subscription, error) {
			sub.ID = domain.SubscriptionID(uuid.New())

			return &sub, nil
		})
	api.storage.EXPECT().PlatformSettings(gomock.Any()).Return(&domain.PlatformSettings{
		FeePercent:   decimal.RequireFromString("15.00"),
		MinimumFee:   decimal.RequireFromString("1.00"),
		CurrencyCode: "GBP",
	}, nil)
	api.storage.EXPECT().ActiveCreatorSubscription(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	api.storage.EXPECT().UpdateSubscriptionMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, id domain.SubscriptionID, _ any) (*domain.Subscription, error) {
			return &domain.Subscription{
				ID:          id,
				UserID:      user.ID,
				NicheID:     niche.ID,
				Status:      domain.SubscriptionActive,
				GrossAmount: decimal.RequireFromString("10.00"),
			}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/subscriptions", jsonBody(t, map[string]any{
		"nicheId":         uuid.UUID(niche.ID).String(),
		"wantsNewsletter": true,
	}))
	req.Header.Set("Authorization", api.bearer(t, user.ID))

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Subscription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, domain.SubscriptionActive, got.Status)
}
