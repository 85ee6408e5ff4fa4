package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackBinder decodes msgpack request bodies, all other content types are handled by echo.DefaultBinder
type MsgpackBinder struct {
	echo.DefaultBinder
}

// NewMsgpackBinder builds new MsgpackBinder
func NewMsgpackBinder() *MsgpackBinder {
	return &MsgpackBinder{}
}

func (b *MsgpackBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationMsgpack) {
		return b.DefaultBinder.Bind(i, c)
	}

	if err := b.BindPathParams(c, i); err != nil {
		return err
	}

	if req.ContentLength == 0 {
		return nil
	}

	if err := msgpack.NewDecoder(req.Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

func acceptsMsgpack(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationMsgpack)
}

// respond writes v as msgpack if client accepts it, otherwise as json
func respond(c echo.Context, code int, v any) error {
	if !acceptsMsgpack(c) {
		return c.JSON(code, v)
	}

	b, err := msgpack.Marshal(v)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
	return c.Blob(code, echo.MIMEApplicationMsgpack, b)
}
