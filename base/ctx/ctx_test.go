package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ctxSuite struct {
	suite.Suite
}

func TestCtx(t *testing.T) {
	suite.Run(t, new(ctxSuite))
}

func (s *ctxSuite) TestWithValue() {
	c := WithValue(Background(), "auctionId", "42")
	s.Equal("42", c.Value("auctionId"))
	s.Nil(c.Value("missing"))
}

func (s *ctxSuite) TestWithValues() {
	c := WithValues(Background(), map[string]interface{}{
		"chainId": int32(1),
		"bidder":  "0xabc",
	})
	s.Equal(int32(1), c.Value("chainId"))
	s.Equal("0xabc", c.Value("bidder"))
}

func (s *ctxSuite) TestWithCancel() {
	c, cancel := WithCancel(Background())
	select {
	case <-c.Done():
		s.Fail("done before cancel")
	default:
	}
	cancel()
	select {
	case <-c.Done():
		s.Equal(context.Canceled, c.Err())
	case <-time.After(time.Second):
		s.Fail("cancel did not propagate")
	}
}

func (s *ctxSuite) TestWithTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	select {
	case <-c.Done():
		s.Equal(context.DeadlineExceeded, c.Err())
	case <-time.After(time.Second):
		s.Fail("deadline did not fire")
	}
}
