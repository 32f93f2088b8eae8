// Package ledger adapts the external settlement contract's HTTP gateway.
// All state-changing calls from this process share one ledger identity,
// so they are serialized through a single dispatcher goroutine that
// fetches the sender nonce immediately before each submission.
package ledger

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"

	"crossborder-orchestrator/config"
	"crossborder-orchestrator/internal/core/domain"
	"crossborder-orchestrator/pkg/apperror"

	"github.com/rs/zerolog"
)

// duplicateSubmissionPatterns are ledger error texts meaning the call was
// already accepted. Such failures downgrade to idempotent successes; the
// caller re-derives the true outcome from getVerificationStatus or local
// session state.
var duplicateSubmissionPatterns = []string{
	"already known",
	"replacement fee too low",
	"REPLACEMENT_UNDERPRICED",
	"nonce too low",
}

type txRequest struct {
	Method   string                 `json:"method"`
	Params   map[string]interface{} `json:"params"`
	Nonce    uint64                 `json:"nonce"`
	GasLimit uint64                 `json:"gasLimit"`
	Contract string                 `json:"contract,omitempty"`
}

type callRequest struct {
	Method   string                 `json:"method"`
	Params   map[string]interface{} `json:"params"`
	Contract string                 `json:"contract,omitempty"`
}

type gatewayError struct {
	Error string `json:"error"`
}

type job struct {
	ctx    context.Context
	method string
	params map[string]interface{}
	result chan jobResult
}

type jobResult struct {
	receipt *domain.LedgerReceipt
	err     error
}

// Client implements ports.LedgerClient and ports.LedgerEventSource.
type Client struct {
	cfg  config.LedgerConfig
	http *http.Client
	log  zerolog.Logger
	jobs chan *job
	done chan struct{}
}

// NewClient creates a gateway client and starts its dispatcher.
func NewClient(cfg config.LedgerConfig, log zerolog.Logger) *Client {
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.CallTimeout},
		log:  log,
		jobs: make(chan *job),
		done: make(chan struct{}),
	}
	go c.dispatch()
	return c
}

// Close stops the dispatcher. In-flight submissions finish first.
func (c *Client) Close() {
	close(c.jobs)
	<-c.done
}

// dispatch runs all outbound state-changing calls in submission order.
// The nonce is fetched immediately before each send, never earlier.
func (c *Client) dispatch() {
	defer close(c.done)
	for j := range c.jobs {
		receipt, err := c.execute(j)
		j.result <- jobResult{receipt: receipt, err: err}
	}
}

func (c *Client) execute(j *job) (*domain.LedgerReceipt, error) {
	nonce, err := c.fetchNonce(j.ctx)
	if err != nil {
		return nil, apperror.ErrLedgerCallFailure(fmt.Errorf("fetching nonce: %w", err))
	}

	req := txRequest{
		Method:   j.method,
		Params:   j.params,
		Nonce:    nonce,
		GasLimit: c.cfg.GasLimit,
		Contract: c.cfg.ContractAddress,
	}

	var receipt domain.LedgerReceipt
	if err := c.post(j.ctx, "/tx", req, &receipt); err != nil {
		if isDuplicateSubmission(err) {
			c.log.Warn().
				Str("method", j.method).
				Err(err).
				Msg("ledger call already accepted, downgrading to idempotent success")
			return &domain.LedgerReceipt{TxHash: domain.TxHashAlreadyProcessed}, nil
		}
		return nil, apperror.ErrLedgerCallFailure(fmt.Errorf("%s: %w", j.method, err))
	}

	c.log.Info().
		Str("method", j.method).
		Str("tx_hash", receipt.TxHash).
		Uint64("block", receipt.BlockNumber).
		Msg("ledger call included")
	return &receipt, nil
}

// submitTx queues a state-changing call and blocks until inclusion.
func (c *Client) submitTx(ctx context.Context, method string, params map[string]interface{}) (*domain.LedgerReceipt, error) {
	j := &job{ctx: ctx, method: method, params: params, result: make(chan jobResult, 1)}
	select {
	case c.jobs <- j:
	case <-ctx.Done():
		return nil, apperror.ErrLedgerCallFailure(ctx.Err())
	}
	select {
	case res := <-j.result:
		return res.receipt, res.err
	case <-ctx.Done():
		return nil, apperror.ErrLedgerCallFailure(ctx.Err())
	}
}

// InitiateTransfer anchors the destination ciphertext on the ledger.
func (c *Client) InitiateTransfer(ctx context.Context, direction domain.Direction, sessionID, merchantID, encryptedData string) (*domain.LedgerReceipt, error) {
	var method string
	switch direction {
	case domain.DirectionThailandToMalaysia:
		method = "initiateThailandToMalaysiaPayment"
	case domain.DirectionMalaysiaToThailand:
		method = "initiateMalaysiaToThailandPayment"
	default:
		return nil, apperror.InternalError(fmt.Errorf("unknown direction %q", direction))
	}

	raw, err := base64.StdEncoding.DecodeString(encryptedData)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decoding ciphertext: %w", err))
	}

	return c.submitTx(ctx, method, map[string]interface{}{
		"sessionId":     sessionID,
		"merchantId":    merchantID,
		"encryptedData": "0x" + hex.EncodeToString(raw),
	})
}

// ConfirmVerification anchors one bank's locally decided boolean.
func (c *Client) ConfirmVerification(ctx context.Context, country, sessionID string, verified bool, bankID string) (*domain.LedgerReceipt, error) {
	return c.submitTx(ctx, fmt.Sprintf("confirm%sVerification", country), map[string]interface{}{
		"sessionId": sessionID,
		"verified":  verified,
		"bankId":    bankID,
	})
}

// ConfirmOriginSettled records the payer-side settlement leg.
func (c *Client) ConfirmOriginSettled(ctx context.Context, sessionID string) (*domain.LedgerReceipt, error) {
	return c.submitTx(ctx, "confirmOriginBankPayment", map[string]interface{}{
		"sessionId": sessionID,
		"confirmed": true,
	})
}

// ConfirmDestinationSettled records the merchant-side settlement leg.
func (c *Client) ConfirmDestinationSettled(ctx context.Context, sessionID, merchantID string) (*domain.LedgerReceipt, error) {
	return c.submitTx(ctx, "confirmDestinationBankPayment", map[string]interface{}{
		"sessionId":  sessionID,
		"merchantId": merchantID,
		"confirmed":  true,
	})
}

// ProcessPayment records payment initiation for the payer's country.
func (c *Client) ProcessPayment(ctx context.Context, country, sessionID, payerUserID string, amount float64) (*domain.LedgerReceipt, error) {
	return c.submitTx(ctx, fmt.Sprintf("process%sPayment", country), map[string]interface{}{
		"sessionId": sessionID,
		"userId":    payerUserID,
		"amount":    toWei(amount),
	})
}

// GetVerificationStatus reads the consensus record. Reads bypass the
// dispatcher: they carry no nonce.
func (c *Client) GetVerificationStatus(ctx context.Context, sessionID string) (*domain.LedgerVerificationStatus, error) {
	req := callRequest{
		Method:   "getVerificationStatus",
		Params:   map[string]interface{}{"sessionId": sessionID},
		Contract: c.cfg.ContractAddress,
	}
	var status domain.LedgerVerificationStatus
	if err := c.post(ctx, "/call", req, &status); err != nil {
		return nil, apperror.ErrLedgerCallFailure(fmt.Errorf("getVerificationStatus: %w", err))
	}
	return &status, nil
}

func (c *Client) fetchNonce(ctx context.Context) (uint64, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.GatewayURL+"/nonce", nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, readGatewayError(resp)
	}
	var body struct {
		Nonce uint64 `json:"nonce"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Nonce, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GatewayURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readGatewayError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func readGatewayError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	var ge gatewayError
	if err := json.Unmarshal(body, &ge); err == nil && ge.Error != "" {
		return fmt.Errorf("gateway %d: %s", resp.StatusCode, ge.Error)
	}
	return fmt.Errorf("gateway %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

func isDuplicateSubmission(err error) bool {
	msg := err.Error()
	for _, p := range duplicateSubmissionPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// toWei converts a display-unit amount to the contract's 18-decimal
// integer representation, rendered as a decimal string.
func toWei(amount float64) string {
	f := new(big.Float).Mul(big.NewFloat(amount), big.NewFloat(1e18))
	i, _ := f.Int(nil)
	return i.String()
}
