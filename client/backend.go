package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ibrahim-qi/macro-logger-app/models"
	"github.com/ibrahim-qi/macro-logger-app/services"
	"github.com/ibrahim-qi/macro-logger-app/utils"

	"github.com/go-resty/resty/v2"
)

// Backend is the remote contract every client component consumes. The day
// store, summary client and prefill flows all speak through it, which also
// makes them testable against an in-memory fake.
type Backend interface {
	FetchEntries(ctx context.Context, sess *Session, day time.Time) ([]models.FoodEntry, error)
	InsertEntry(ctx context.Context, sess *Session, in services.EntryInput) (*models.FoodEntry, error)
	UpdateEntry(ctx context.Context, sess *Session, id uint, patch services.EntryPatch) (*models.FoodEntry, error)
	DeleteEntry(ctx context.Context, sess *Session, id uint) error

	FetchSavedFoods(ctx context.Context, sess *Session, query string) ([]models.SavedFood, error)
	InsertSavedFood(ctx context.Context, sess *Session, in services.SavedFoodInput) (*models.SavedFood, error)
	UpdateSavedFood(ctx context.Context, sess *Session, id uint, in services.SavedFoodInput) (*models.SavedFood, error)
	DeleteSavedFood(ctx context.Context, sess *Session, id uint) error

	FetchGoals(ctx context.Context, sess *Session, day time.Time) (*services.GoalProgress, error)
	UpsertGoals(ctx context.Context, sess *Session, in services.GoalsInput) (*models.UserGoals, error)

	WeeklySummary(ctx context.Context, sess *Session, day time.Time) ([]models.PeriodSummary, error)
	MonthlySummary(ctx context.Context, sess *Session, year int, month int) ([]models.PeriodSummary, error)
}

// API is the HTTP implementation of Backend.
type API struct {
	http    *resty.Client
	baseURL string
}

func NewAPI(baseURL string) *API {
	base := strings.TrimSuffix(baseURL, "/")

	httpClient := resty.New()
	httpClient.
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &API{http: httpClient, baseURL: base}
}

type apiError struct {
	Error string `json:"error"`
}

// Login exchanges credentials for a session.
func (a *API) Login(ctx context.Context, email, password string) (*Session, error) {
	var out struct {
		Token  string `json:"token"`
		UserID uint   `json:"user_id"`
	}
	resp, err := a.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/auth/login")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return &Session{UserID: out.UserID, Token: out.Token}, nil
}

// Register creates an account and logs straight in.
func (a *API) Register(ctx context.Context, email, password, firstName, lastName string) (*Session, error) {
	resp, err := a.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"email":      email,
			"password":   password,
			"first_name": firstName,
			"last_name":  lastName,
		}).
		SetError(&apiError{}).
		Post("/auth/register")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return a.Login(ctx, email, password)
}

// WSURL is the websocket endpoint carrying the session token, for Subscribe.
func (a *API) WSURL(sess *Session) string {
	ws := strings.Replace(a.baseURL, "http", "ws", 1)
	return ws + "/ws?token=" + sess.Token
}

func (a *API) FetchEntries(ctx context.Context, sess *Session, day time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	resp, err := a.authed(ctx, sess).
		SetQueryParam("date", day.Format(utils.DateLayout)).
		SetResult(&entries).
		Get("/entries")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *API) InsertEntry(ctx context.Context, sess *Session, in services.EntryInput) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	resp, err := a.authed(ctx, sess).SetBody(in).SetResult(&entry).Post("/entries")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (a *API) UpdateEntry(ctx context.Context, sess *Session, id uint, patch services.EntryPatch) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	resp, err := a.authed(ctx, sess).SetBody(patch).SetResult(&entry).Patch("/entries/" + itoa(id))
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (a *API) DeleteEntry(ctx context.Context, sess *Session, id uint) error {
	resp, err := a.authed(ctx, sess).Delete("/entries/" + itoa(id))
	return classify(resp, err)
}

func (a *API) FetchSavedFoods(ctx context.Context, sess *Session, query string) ([]models.SavedFood, error) {
	var foods []models.SavedFood
	req := a.authed(ctx, sess).SetResult(&foods)
	if query != "" {
		req.SetQueryParam("q", query)
	}
	resp, err := req.Get("/saved-foods")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return foods, nil
}

func (a *API) InsertSavedFood(ctx context.Context, sess *Session, in services.SavedFoodInput) (*models.SavedFood, error) {
	var food models.SavedFood
	resp, err := a.authed(ctx, sess).SetBody(in).SetResult(&food).Post("/saved-foods")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return &food, nil
}

func (a *API) UpdateSavedFood(ctx context.Context, sess *Session, id uint, in services.SavedFoodInput) (*models.SavedFood, error) {
	var food models.SavedFood
	resp, err := a.authed(ctx, sess).SetBody(in).SetResult(&food).Patch("/saved-foods/" + itoa(id))
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return &food, nil
}

func (a *API) DeleteSavedFood(ctx context.Context, sess *Session, id uint) error {
	resp, err := a.authed(ctx, sess).Delete("/saved-foods/" + itoa(id))
	return classify(resp, err)
}

func (a *API) FetchGoals(ctx context.Context, sess *Session, day time.Time) (*services.GoalProgress, error) {
	var progress services.GoalProgress
	resp, err := a.authed(ctx, sess).
		SetQueryParam("date", day.Format(utils.DateLayout)).
		SetResult(&progress).
		Get("/goals")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (a *API) UpsertGoals(ctx context.Context, sess *Session, in services.GoalsInput) (*models.UserGoals, error) {
	var goals models.UserGoals
	resp, err := a.authed(ctx, sess).SetBody(in).SetResult(&goals).Put("/goals")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return &goals, nil
}

func (a *API) WeeklySummary(ctx context.Context, sess *Session, day time.Time) ([]models.PeriodSummary, error) {
	var rows []models.PeriodSummary
	resp, err := a.authed(ctx, sess).
		SetQueryParam("date", day.Format(utils.DateLayout)).
		SetResult(&rows).
		Get("/summary/weekly")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return rows, nil
}

func (a *API) MonthlySummary(ctx context.Context, sess *Session, year int, month int) ([]models.PeriodSummary, error) {
	var rows []models.PeriodSummary
	resp, err := a.authed(ctx, sess).
		SetQueryParam("year", strconv.Itoa(year)).
		SetQueryParam("month", strconv.Itoa(month)).
		SetResult(&rows).
		Get("/summary/monthly")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return rows, nil
}

func (a *API) authed(ctx context.Context, sess *Session) *resty.Request {
	return a.http.R().
		SetContext(ctx).
		SetAuthToken(sess.Token).
		SetError(&apiError{})
}

// classify folds transport errors and HTTP statuses into the package's error
// taxonomy.
func classify(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if !resp.IsError() {
		return nil
	}

	detail := resp.Status()
	if body, ok := resp.Error().(*apiError); ok && body.Error != "" {
		detail = body.Error
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAuthorization, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	default:
		return fmt.Errorf("%w: %s", ErrNetwork, detail)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
