package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/delivery"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/middleware"
	authMiddleware "github.com/x-xyz/auctionhouse/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	auction        auction.UseCase
	params         auction.ParamsUseCase
	activity       activity.Usecase
	authMiddleware *authMiddleware.AuthMiddleware
}

func New(
	e *echo.Echo,
	auctionUC auction.UseCase,
	params auction.ParamsUseCase,
	activity activity.Usecase,
	authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("auction")

	h := &handler{auctionUC, params, activity, authMiddleware}

	gs := e.Group("/auctions")

	gs.GET("", h.getAll, middleware.CacheHttp(10*time.Second))

	gs.GET("/count/:chainId", h.getCount, middleware.CacheHttp(30*time.Second))

	e.POST("/auction", h.create, authMiddleware.Auth(), authMiddleware.IsAdmin())

	g := e.Group("/auction/:chainId/:auctionId")

	g.GET("", h.get, h.auctionRequestCount())

	g.GET("/activities", h.getActivities)

	g.POST("/bid", h.placeBid, authMiddleware.Auth())

	g.POST("/cancel", h.cancel, authMiddleware.Auth(), authMiddleware.IsAdmin())

	g.POST("/settle", h.settle, authMiddleware.Auth())

	p := e.Group("/params/:chainId")

	p.GET("", h.getParams)

	p.POST("/minBidIncrementBps", h.setMinBidIncrementBps, authMiddleware.Auth(), authMiddleware.IsAdmin())

	p.POST("/softClosePeriod", h.setSoftClosePeriod, authMiddleware.Auth(), authMiddleware.IsAdmin())

	p.POST("/auctionExtensionPeriod", h.setAuctionExtensionPeriod, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) auctionRequestCount() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			type params struct {
				ChainId   domain.ChainId `param:"chainId"`
				AuctionId int64          `param:"auctionId"`
			}

			p := params{}
			c.Bind(&p)
			met.BumpSum("get.count", 1, "chainId", fmt.Sprint(p.ChainId), "auctionId", fmt.Sprint(p.AuctionId))
			return next(c)
		}
	}
}

// create
//
//	@Summary		Create auction
//	@Description	Pull the asset into custody and open an auction for it
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		auction.CreateAuctionPayload	true	"params"
//	@Success		201		{object}	auction.Auction
//	@Failure		400
//	@Failure		500
//	@Router			/auction [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := auction.CreateAuctionPayload{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid payload")
	}

	// the asset is pulled from the caller, whatever the body claims
	p.Seller = c.Get("address").(domain.Address)

	if res, err := h.auction.CreateAuction(ctx, p); err == domain.ErrInvalidDeadline ||
		err == domain.ErrInvalidQuantity ||
		err == domain.ErrInvalidChainId ||
		err == domain.ErrUnsupportedAssetKind ||
		err == domain.ErrInvalidCurrency ||
		err == domain.ErrInvalidNumberFormat {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

// getAll
//
//	@Summary		List auctions
//	@Description	List auctions with optional filters
//	@Tags			auction
//	@Produce		json
//	@Param			chainId	query		int		false	"chain id"	example(1)
//	@Param			status	query		string	false	"auction status"	example(active)
//	@Param			seller	query		string	false	"seller address"
//	@Param			contract	query	string	false	"asset contract address"
//	@Param			offset	query		int		false	"paging offset"
//	@Param			limit	query		int		false	"paging size"
//	@Success		200		{array}		auction.Auction
//	@Failure		400
//	@Failure		500
//	@Router			/auctions [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId  *domain.ChainId `query:"chainId"`
		Status   *auction.Status `query:"status"`
		Seller   *domain.Address `query:"seller"`
		Contract *domain.Address `query:"contract"`
		Offset   int32           `query:"offset"`
		Limit    int32           `query:"limit"`
		SortBy   *string         `query:"sortBy"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []auction.FindAllOptionsFunc{}

	if p.ChainId != nil {
		opts = append(opts, auction.WithChainId(*p.ChainId))
	}

	if p.Status != nil {
		opts = append(opts, auction.WithStatus(*p.Status))
	}

	if p.Seller != nil {
		opts = append(opts, auction.WithSeller(*p.Seller))
	}

	if p.Contract != nil {
		opts = append(opts, auction.WithContractAddress(*p.Contract))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, auction.WithPagination(p.Offset, p.Limit))
	}

	if p.SortBy != nil {
		opts = append(opts, auction.WithSort(*p.SortBy))
	}

	if res, err := h.auction.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// getCount
//
//	@Summary		Lifetime auction count
//	@Description	Number of auctions ever created on the chain, including terminal ones
//	@Tags			auction
//	@Produce		json
//	@Param			chainId	path		int	true	"chain id"	example(1)
//	@Success		200		{object}	object{data=int}
//	@Failure		400
//	@Failure		500
//	@Router			/auctions/count/{chainId} [get]
func (h *handler) getCount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId domain.ChainId `param:"chainId"`
	}

	p := params{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.AuctionsCreated(ctx, p.ChainId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// get
//
//	@Summary		Get auction
//	@Description	Retrieve one auction record
//	@Tags			auction
//	@Produce		json
//	@Param			chainId		path		int	true	"chain id"		example(1)
//	@Param			auctionId	path		int	true	"auction id"	example(1)
//	@Success		200			{object}	auction.Auction
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/auction/{chainId}/{auctionId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := auction.Id{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.auction.GetAuction(ctx, p); err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId   domain.ChainId `param:"chainId"`
		AuctionId int64          `param:"auctionId"`
		Offset    int            `query:"offset"`
		Limit     int            `query:"limit"`
	}

	p := params{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []activity.FindActivityOptions{
		activity.WithAuction(p.ChainId, p.AuctionId),
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, activity.WithPagination(p.Offset, p.Limit))
	}

	if res, err := h.activity.FindActivities(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// placeBid
//
//	@Summary		Place bid
//	@Description	Escrow the bid payment and record the caller as the winning bidder
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			chainId		path		int					true	"chain id"		example(1)
//	@Param			auctionId	path		int					true	"auction id"	example(1)
//	@Param			params		body		http.placeBid.params	true	"params"
//	@Success		200			{object}	auction.Auction
//	@Failure		400
//	@Failure		500
//	@Router			/auction/{chainId}/{auctionId}/bid [post]
func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		ChainId       domain.ChainId `param:"chainId"`
		AuctionId     int64          `param:"auctionId"`
		Amount        string         `json:"amount" description:"bid amount in base units" example:"10100000000000000000"`
		AttachedValue string         `json:"attachedValue" description:"native payment, must equal amount for native auctions"`
	}

	p := params{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid payload")
	}

	payload := auction.PlaceBidPayload{
		ChainId:       p.ChainId,
		AuctionId:     p.AuctionId,
		Bidder:        address,
		Amount:        p.Amount,
		AttachedValue: p.AttachedValue,
	}

	if res, err := h.auction.PlaceBid(ctx, payload); err == domain.ErrInvalidAuctionId ||
		err == domain.ErrAuctionEnded ||
		err == domain.ErrInvalidBidAmount ||
		err == domain.ErrInvalidEthAmount ||
		err == domain.ErrInvalidNumberFormat {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// cancel
//
//	@Summary		Cancel auction
//	@Description	Close a bid-free auction and return the asset to the seller
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			chainId		path	int	true	"chain id"		example(1)
//	@Param			auctionId	path	int	true	"auction id"	example(1)
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/auction/{chainId}/{auctionId}/cancel [post]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := auction.Id{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.CancelAuction(ctx, p, address); err == domain.ErrInvalidAuctionId ||
		err == domain.ErrBidsAlreadyMade {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	}
}

// settle
//
//	@Summary		Settle auction
//	@Description	Close an ended auction, paying the seller and delivering the asset to the winner
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			chainId		path	int	true	"chain id"		example(1)
//	@Param			auctionId	path	int	true	"auction id"	example(1)
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/auction/{chainId}/{auctionId}/settle [post]
func (h *handler) settle(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := auction.Id{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.SettleAuction(ctx, p, address); err == domain.ErrInvalidAuctionId ||
		err == domain.ErrAuctionStillActive {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	}
}

// getParams
//
//	@Summary		Get bidding parameters
//	@Description	Current increment and soft close configuration for the chain
//	@Tags			auction
//	@Produce		json
//	@Param			chainId	path		int	true	"chain id"	example(1)
//	@Success		200		{object}	auction.Params
//	@Failure		400
//	@Failure		500
//	@Router			/params/{chainId} [get]
func (h *handler) getParams(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId domain.ChainId `param:"chainId"`
	}

	p := params{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.params.Get(ctx, p.ChainId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

type setParamPayload struct {
	ChainId domain.ChainId `param:"chainId"`
	Value   int64          `json:"value"`
}

// setMinBidIncrementBps
//
//	@Summary		Set minimum bid increment
//	@Description	Overwrite the minimum raise over the previous bid in basis points
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			chainId	path	int							true	"chain id"	example(1)
//	@Param			params	body	http.setParamPayload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/params/{chainId}/minBidIncrementBps [post]
func (h *handler) setMinBidIncrementBps(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := setParamPayload{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid payload")
	}

	if err := h.params.SetMinBidIncrementBps(ctx, p.ChainId, p.Value); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	}
}

// setSoftClosePeriod
//
//	@Summary		Set soft close period
//	@Description	Overwrite the trailing window in seconds during which a bid extends the deadline
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			chainId	path	int							true	"chain id"	example(1)
//	@Param			params	body	http.setParamPayload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/params/{chainId}/softClosePeriod [post]
func (h *handler) setSoftClosePeriod(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := setParamPayload{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid payload")
	}

	if err := h.params.SetSoftClosePeriod(ctx, p.ChainId, p.Value); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	}
}

// setAuctionExtensionPeriod
//
//	@Summary		Set extension period
//	@Description	Overwrite the seconds added to the deadline on a soft close
//	@Tags			auction
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			chainId	path	int							true	"chain id"	example(1)
//	@Param			params	body	http.setParamPayload	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/params/{chainId}/auctionExtensionPeriod [post]
func (h *handler) setAuctionExtensionPeriod(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := setParamPayload{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid payload")
	}

	if err := h.params.SetAuctionExtensionPeriod(ctx, p.ChainId, p.Value); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	}
}
