package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks JSON-RPC to the settlement network endpoint. One
// instance per session; safe for concurrent use.
type Client struct {
	endpoint string
	treasury string
	chainID  string
	http     *http.Client
}

func NewClient(endpoint, treasury, chainID string) *Client {
	return &Client{
		endpoint: endpoint,
		treasury: treasury,
		chainID:  chainID,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// call performs one round trip. Transport failures come back wrapped
// in ErrUnavailable; ledger-level failures come back as *RPCError.
func (c *Client) call(ctx context.Context, method string, params any, out any) error {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned HTTP %d", ErrUnavailable, method, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("%w: %s: malformed response: %v", ErrUnavailable, method, err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("%w: %s: malformed result: %v", ErrUnavailable, method, err)
		}
	}
	return nil
}

// params always lead with the treasury contract address so one
// endpoint can serve multiple deployments.
func (c *Client) params(args ...any) []any {
	return append([]any{c.treasury}, args...)
}

func (c *Client) GetBalance(ctx context.Context, account string) (int64, error) {
	var balance int64
	err := c.call(ctx, "treasury_getBalance", c.params(account), &balance)
	return balance, err
}

func (c *Client) GetTransactionCount(ctx context.Context) (int, error) {
	var count int
	err := c.call(ctx, "treasury_getTransactionCount", c.params(), &count)
	return count, err
}

func (c *Client) GetTransaction(ctx context.Context, txID string) (*TransactionRecord, error) {
	var record TransactionRecord
	if err := c.call(ctx, "treasury_getTransaction", c.params(txID), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) GetSigners(ctx context.Context) ([]string, error) {
	var signers []string
	err := c.call(ctx, "treasury_getSigners", c.params(), &signers)
	return signers, err
}

func (c *Client) IsSigner(ctx context.Context, address string) (bool, error) {
	var ok bool
	err := c.call(ctx, "treasury_isSigner", c.params(address), &ok)
	return ok, err
}

func (c *Client) HasApproved(ctx context.Context, txID, address string) (bool, error) {
	var ok bool
	err := c.call(ctx, "treasury_hasApproved", c.params(txID, address), &ok)
	return ok, err
}

func (c *Client) HasRejected(ctx context.Context, txID, address string) (bool, error) {
	var ok bool
	err := c.call(ctx, "treasury_hasRejected", c.params(txID, address), &ok)
	return ok, err
}

func (c *Client) GetThresholds(ctx context.Context) ([]Threshold, error) {
	var thresholds []Threshold
	err := c.call(ctx, "treasury_getThresholds", c.params(), &thresholds)
	return thresholds, err
}

func (c *Client) GetRequiredApprovals(ctx context.Context, amount int64) (int, error) {
	var required int
	err := c.call(ctx, "treasury_getRequiredApprovals", c.params(amount), &required)
	return required, err
}

func (c *Client) GetDailySpendRemaining(ctx context.Context) (int64, error) {
	var remaining int64
	err := c.call(ctx, "treasury_getDailySpendRemaining", c.params(), &remaining)
	return remaining, err
}

func (c *Client) DailyLimit(ctx context.Context) (int64, error) {
	var limit int64
	err := c.call(ctx, "treasury_dailyLimit", c.params(), &limit)
	return limit, err
}

func (c *Client) TimelockDuration(ctx context.Context) (time.Duration, error) {
	var seconds int64
	if err := c.call(ctx, "treasury_timelockDuration", c.params(), &seconds); err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

func (c *Client) Paused(ctx context.Context) (bool, error) {
	var paused bool
	err := c.call(ctx, "treasury_paused", c.params(), &paused)
	return paused, err
}

func (c *Client) Propose(ctx context.Context, to string, amount int64, memo, description string) (string, error) {
	var txID string
	err := c.call(ctx, "treasury_propose", c.params(to, amount, memo, description), &txID)
	return txID, err
}

func (c *Client) Approve(ctx context.Context, txID string) error {
	return c.call(ctx, "treasury_approve", c.params(txID), nil)
}

func (c *Client) RevokeApproval(ctx context.Context, txID string) error {
	return c.call(ctx, "treasury_revokeApproval", c.params(txID), nil)
}

func (c *Client) Reject(ctx context.Context, txID, reason string) error {
	return c.call(ctx, "treasury_reject", c.params(txID, reason), nil)
}

func (c *Client) Execute(ctx context.Context, txID string) (string, error) {
	var settlementRef string
	err := c.call(ctx, "treasury_execute", c.params(txID), &settlementRef)
	return settlementRef, err
}

func (c *Client) EmergencyPause(ctx context.Context) error {
	return c.call(ctx, "treasury_emergencyPause", c.params(), nil)
}

func (c *Client) VoteUnpause(ctx context.Context) error {
	return c.call(ctx, "treasury_voteUnpause", c.params(), nil)
}
