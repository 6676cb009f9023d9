package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/clubedepontos/loyaltyhook/internal/models"
	"github.com/shopspring/decimal"
)

const accessTokenHeader = "X-Shopify-Access-Token"

// metafields owned by the loyalty program
const (
	pointsNamespace = "loyalty"
	pointsKey       = "points"
	pointsType      = "number_decimal"

	clubLevelNamespace = "custom"
	clubLevelKey       = "club_level"
	clubLevelType      = "number_integer"
)

// CustomerGID returns the Admin API global id for a customer.
func CustomerGID(id int64) string {
	return fmt.Sprintf("gid://shopify/Customer/%d", id)
}

// OrderGID returns the Admin API global id for an order.
func OrderGID(id int64) string {
	return fmt.Sprintf("gid://shopify/Order/%d", id)
}

// Client talks to the Admin GraphQL API, the service of record for customer
// loyalty fields and order annotations.
type Client struct {
	client   *http.Client
	endpoint string
	token    string
}

// NewClient creates new Client instance
func NewClient(endpoint, token string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		endpoint: endpoint,
		token:    token,
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// query posts one GraphQL document and decodes the data envelope into out.
// Top-level GraphQL errors are returned as errors.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, c.token)

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("admin api returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql: %s", envelope.Errors[0].Message)
	}
	if out != nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, out)
	}

	return nil
}

type customerMetafieldData struct {
	Customer *struct {
		Metafield *struct {
			Value string `json:"value"`
		} `json:"metafield"`
		AmountSpent *struct {
			Amount       string `json:"amount"`
			CurrencyCode string `json:"currencyCode"`
		} `json:"amountSpent"`
	} `json:"customer"`
}

const customerPointsQuery = `
query getCustomer($id: ID!) {
  customer(id: $id) {
    metafield(namespace: "loyalty", key: "points") {
      value
    }
  }
}`

// CustomerPoints returns the customer's current points balance. A customer
// without the points metafield has a zero balance.
func (c *Client) CustomerPoints(ctx context.Context, customerGID string) (decimal.Decimal, error) {
	var data customerMetafieldData
	if err := c.query(ctx, customerPointsQuery, map[string]any{"id": customerGID}, &data); err != nil {
		return decimal.Zero, err
	}
	if data.Customer == nil {
		return decimal.Zero, models.ErrCustomerNotFound
	}
	if data.Customer.Metafield == nil || data.Customer.Metafield.Value == "" {
		return decimal.Zero, nil
	}

	points, err := decimal.NewFromString(data.Customer.Metafield.Value)
	if err != nil {
		return decimal.Zero, nil
	}
	return points, nil
}

const customerClubLevelQuery = `
query getCustomerClubLevel($id: ID!) {
  customer(id: $id) {
    metafield(namespace: "custom", key: "club_level") { value }
  }
}`

// CustomerClubLevel returns the customer's current club level. A missing or
// non-numeric metafield maps to level 0.
func (c *Client) CustomerClubLevel(ctx context.Context, customerGID string) (int, error) {
	var data customerMetafieldData
	if err := c.query(ctx, customerClubLevelQuery, map[string]any{"id": customerGID}, &data); err != nil {
		return 0, err
	}
	if data.Customer == nil {
		return 0, models.ErrCustomerNotFound
	}
	if data.Customer.Metafield == nil {
		return 0, nil
	}

	level, err := strconv.Atoi(data.Customer.Metafield.Value)
	if err != nil {
		return 0, nil
	}
	return level, nil
}

const customerTotalSpentQuery = `
query getCustomerTotalSpent($id: ID!) {
  customer(id: $id) { amountSpent { amount currencyCode } }
}`

// CustomerTotalSpent returns the customer's cumulative spend in store
// currency.
func (c *Client) CustomerTotalSpent(ctx context.Context, customerGID string) (decimal.Decimal, error) {
	var data customerMetafieldData
	if err := c.query(ctx, customerTotalSpentQuery, map[string]any{"id": customerGID}, &data); err != nil {
		return decimal.Zero, err
	}
	if data.Customer == nil {
		return decimal.Zero, models.ErrCustomerNotFound
	}
	if data.Customer.AmountSpent == nil || data.Customer.AmountSpent.Amount == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(data.Customer.AmountSpent.Amount)
	if err != nil {
		return decimal.Zero, nil
	}
	return amount, nil
}

const customerUpdateMutation = `
mutation customerUpdate($input: CustomerInput!) {
  customerUpdate(input: $input) {
    customer { id }
    userErrors { field message }
  }
}`

type customerUpdateData struct {
	CustomerUpdate struct {
		Customer *struct {
			ID string `json:"id"`
		} `json:"customer"`
		UserErrors []userError `json:"userErrors"`
	} `json:"customerUpdate"`
}

// updateCustomerMetafield writes a single metafield, fully replacing its
// value.
func (c *Client) updateCustomerMetafield(ctx context.Context, customerGID, namespace, key, value, valueType string) error {
	input := map[string]any{
		"id": customerGID,
		"metafields": []map[string]any{{
			"namespace": namespace,
			"key":       key,
			"value":     value,
			"type":      valueType,
		}},
	}

	var data customerUpdateData
	if err := c.query(ctx, customerUpdateMutation, map[string]any{"input": input}, &data); err != nil {
		return err
	}
	if len(data.CustomerUpdate.UserErrors) > 0 {
		return fmt.Errorf("customerUpdate: %s", data.CustomerUpdate.UserErrors[0].Message)
	}
	if data.CustomerUpdate.Customer == nil {
		return models.ErrCustomerNotFound
	}

	return nil
}

// UpdateCustomerPoints replaces the customer's points balance.
func (c *Client) UpdateCustomerPoints(ctx context.Context, customerGID string, points decimal.Decimal) error {
	return c.updateCustomerMetafield(ctx, customerGID, pointsNamespace, pointsKey, points.String(), pointsType)
}

// UpdateCustomerClubLevel replaces the customer's club level.
func (c *Client) UpdateCustomerClubLevel(ctx context.Context, customerGID string, level int) error {
	return c.updateCustomerMetafield(ctx, customerGID, clubLevelNamespace, clubLevelKey, strconv.Itoa(level), clubLevelType)
}

const orderUpdateMutation = `
mutation orderUpdate($input: OrderInput!) {
  orderUpdate(input: $input) {
    order { id note }
    userErrors { field message }
  }
}`

type orderUpdateData struct {
	OrderUpdate struct {
		Order *struct {
			ID   string `json:"id"`
			Note string `json:"note"`
		} `json:"order"`
		UserErrors []userError `json:"userErrors"`
	} `json:"orderUpdate"`
}

// UpdateOrderNote replaces the free-text note on an order.
func (c *Client) UpdateOrderNote(ctx context.Context, orderGID, note string) error {
	input := map[string]any{
		"id":   orderGID,
		"note": note,
	}

	var data orderUpdateData
	if err := c.query(ctx, orderUpdateMutation, map[string]any{"input": input}, &data); err != nil {
		return err
	}
	if len(data.OrderUpdate.UserErrors) > 0 {
		return fmt.Errorf("orderUpdate: %s", data.OrderUpdate.UserErrors[0].Message)
	}
	if data.OrderUpdate.Order == nil {
		return fmt.Errorf("orderUpdate: order not returned")
	}

	return nil
}
