package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"relview/logger"
	"relview/server/data"
	dataErrors "relview/server/data/errors"
	"relview/server/data/record"
	. "relview/server/errors"
	"relview/server/object/meta"
	"relview/server/serializer"
	"relview/utils"

	"github.com/getsentry/sentry-go"
	"github.com/julienschmidt/httprouter"
)

type RelviewApp struct {
	router *httprouter.Router
}

func (app *RelviewApp) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	app.router.ServeHTTP(w, req)
}

//Invalidator is a loader keeping copies of records which can be dropped per object.
type Invalidator interface {
	Invalidate(m *meta.Meta) error
}

//Relview server description
type RelviewServer struct {
	addr, port, root string
	s                *http.Server
	metaCache        *meta.MetaCache
	loader           data.Loader
	registry         *serializer.Registry
}

func New(host, port, urlPrefix string, metaCache *meta.MetaCache, loader data.Loader) *RelviewServer {
	return &RelviewServer{addr: host, port: port, root: urlPrefix, metaCache: metaCache, loader: loader, registry: serializer.NewRegistry()}
}

func (rs *RelviewServer) SetAddr(a string) {
	rs.addr = a
}

func (rs *RelviewServer) SetPort(p string) {
	rs.port = p
}

func (rs *RelviewServer) SetRoot(r string) {
	rs.root = r
}

//Registry holds the serializers relations may name in their serializer option.
func (rs *RelviewServer) Registry() *serializer.Registry {
	return rs.registry
}

func (rs *RelviewServer) Setup(config *utils.AppConfig) *http.Server {
	app := &RelviewApp{router: httprouter.New()}

	app.router.GET(rs.root+"/meta", CreateJsonAction(func(sink *JsonSink, _ httprouter.Params, q url.Values) {
		metaList := rs.metaCache.GetList()
		result := make([]interface{}, 0, len(metaList))
		for _, m := range metaList {
			result = append(result, m)
		}
		sink.pushList(result, len(result))
	}))

	app.router.GET(rs.root+"/meta/:name", CreateJsonAction(func(sink *JsonSink, p httprouter.Params, q url.Values) {
		if m := rs.metaCache.Get(p.ByName("name")); m != nil {
			sink.pushObj(m)
		} else {
			sink.pushError(NewNotFoundError(ErrNotFound, "object '"+p.ByName("name")+"' not found", nil))
		}
	}))

	app.router.GET(rs.root+"/data/:name/:key", CreateJsonAction(func(sink *JsonSink, p httprouter.Params, q url.Values) {
		target, err := rs.getRecord(p.ByName("name"), p.ByName("key"))
		if err != nil {
			sink.pushError(err)
			return
		}
		depth, err := depthOf(q, config.DepthLimit)
		if err != nil {
			sink.pushError(err)
			return
		}
		options, err := renderOptions(target.Meta.Name, q)
		if err != nil {
			sink.pushError(err)
			return
		}

		adapter := serializer.NewAttributes(rs.loader, rs.registry, depth)
		if result, err := adapter.Serialize(target, options); err != nil {
			sink.pushError(err)
		} else {
			sink.pushObj(result)
		}
	}))

	app.router.GET(rs.root+"/data/:name/:key/relationships", CreateJsonAction(func(sink *JsonSink, p httprouter.Params, q url.Values) {
		target, err := rs.getRecord(p.ByName("name"), p.ByName("key"))
		if err != nil {
			sink.pushError(err)
			return
		}
		options, err := renderOptions(target.Meta.Name, q)
		if err != nil {
			sink.pushError(err)
			return
		}
		adapter := serializer.NewAttributes(rs.loader, rs.registry, config.DepthLimit)
		sink.pushObj(adapter.Relationships(target, options))
	}))

	app.router.DELETE(rs.root+"/cache/:name", CreateJsonAction(func(sink *JsonSink, p httprouter.Params, q url.Values) {
		objectMeta := rs.metaCache.Get(p.ByName("name"))
		if objectMeta == nil {
			sink.pushError(NewNotFoundError(ErrNotFound, "object '"+p.ByName("name")+"' not found", nil))
			return
		}
		invalidator, ok := rs.loader.(Invalidator)
		if !ok {
			sink.pushError(NewValidationError(ErrNotCached, "records are not cached", nil))
			return
		}
		if err := invalidator.Invalidate(objectMeta); err != nil {
			sink.pushError(NewFatalError(ErrInternalServerError, err.Error(), nil))
			return
		}
		logger.Info("Cached records of '%s' dropped", objectMeta.Name)
		sink.pushObj(nil)
	}))

	app.router.PanicHandler = func(w http.ResponseWriter, r *http.Request, err interface{}) {
		sentry.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetContext("Request", map[string]interface{}{"url": r.URL.String(), "method": r.Method})
		})
		if err, ok := err.(error); ok {
			sentry.CaptureException(err)
			sentry.ConfigureScope(func(scope *sentry.Scope) {
				scope.Clear()
			})
			returnError(w, err)
			return
		}
		returnError(w, NewFatalError(ErrInternalServerError, "unexpected failure", nil))
	}

	rs.s = &http.Server{
		Addr:           rs.addr + ":" + rs.port,
		Handler:        app,
		ReadTimeout:    60 * time.Second,
		WriteTimeout:   60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	return rs.s
}

func (rs *RelviewServer) getRecord(objectName, key string) (*record.Record, error) {
	objectMeta := rs.metaCache.Get(objectName)
	if objectMeta == nil {
		return nil, NewNotFoundError(ErrNotFound, "object '"+objectName+"' not found", nil)
	}
	obj, err := rs.loader.Get(objectMeta, objectMeta.Key, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, NewNotFoundError(ErrNotFound, "record not found", nil)
	}
	return record.NewRecord(objectMeta, obj), nil
}

func CreateJsonAction(f func(*JsonSink, httprouter.Params, url.Values)) func(http.ResponseWriter, *http.Request, httprouter.Params) {
	return func(w http.ResponseWriter, req *http.Request, p httprouter.Params) {
		sink, _ := asJsonSink(w)

		query := make(url.Values)
		if err := parseQuery(query, req.URL.RawQuery); err != nil {
			returnError(w, &ServerError{Status: http.StatusBadRequest, Code: ErrBadRequest, Msg: err.Error(), Data: nil})
			return
		}
		f(sink, p, query)
	}
}

//parseQuery keeps the RQL expressions of values as they are, only the keys are unescaped.
func parseQuery(m url.Values, query string) (err error) {
	for query != "" {
		key := query
		if i := strings.IndexAny(key, "&;"); i >= 0 {
			key, query = key[:i], key[i+1:]
		} else {
			query = ""
		}
		if key == "" {
			continue
		}
		value := ""
		if i := strings.Index(key, "="); i >= 0 {
			key, value = key[:i], key[i+1:]
		}
		key, err1 := url.QueryUnescape(key)
		if err1 != nil {
			if err == nil {
				err = err1
			}
			continue
		}
		if unescaped, err1 := url.QueryUnescape(value); err1 == nil {
			value = unescaped
		}
		m[key] = append(m[key], value)
	}
	return err
}

//Returns an error to HTTP response in JSON format.
//If the error object accepted is of ServerError type so HTTP status and code are taken from the error object.
//Data errors are 404 for unknown objects, 500 for loader failures and 400 otherwise.
//Anything else is an internal server error.
func returnError(w http.ResponseWriter, e error) {
	w.Header().Set("Content-Type", "application/json")
	responseData := map[string]interface{}{"status": "FAIL"}
	status := http.StatusInternalServerError
	switch e := e.(type) {
	case *ServerError:
		status = e.Status
		responseData["error"] = e.Serialize()
	case *dataErrors.DataError:
		switch e.Code {
		case dataErrors.ErrObjectClassNotFound:
			status = http.StatusNotFound
		case dataErrors.ErrLoaderUnavailable, dataErrors.ErrDataInternal:
			status = http.StatusInternalServerError
		default:
			status = http.StatusBadRequest
		}
		responseData["error"] = e.Serialize()
	case JsonError:
		status = http.StatusBadRequest
		responseData["error"] = e.Serialize()
	default:
		responseData["error"] = NewFatalError(ErrRenderFailed, e.Error(), nil).Serialize()
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed: %s", e.Error())
		sentry.CaptureException(e)
	}
	w.WriteHeader(status)
	encodedData, _ := json.Marshal(responseData)
	w.Write(encodedData)
}

//The JSON object sink into the HTTP response.
type JsonSink struct {
	rw     http.ResponseWriter
	Status string
}

//Converts http.ResponseWriter into JsonSink.
func asJsonSink(w http.ResponseWriter) (*JsonSink, error) {
	return &JsonSink{w, "OK"}, nil
}

//Push an error into JsonSink.
func (js *JsonSink) pushError(e error) {
	returnError(js.rw, e)
}

//Push an JSON object into JsonSink
func (js *JsonSink) pushObj(object interface{}) {
	responseData := map[string]interface{}{"status": js.Status}
	if object != nil {
		responseData["data"] = object
	}
	if encodedData, err := json.Marshal(responseData); err != nil {
		returnError(js.rw, err)
	} else {
		js.rw.Header().Set("Content-Type", "application/json")
		js.rw.WriteHeader(http.StatusOK)
		js.rw.Write(encodedData)
	}
}

func (js *JsonSink) pushList(objects []interface{}, total int) {
	responseData := map[string]interface{}{"status": js.Status}
	if objects == nil {
		objects = make([]interface{}, 0)
	}
	responseData["data"] = objects
	responseData["total_count"] = total

	if encodedData, err := json.Marshal(responseData); err != nil {
		returnError(js.rw, err)
	} else {
		js.rw.Header().Set("Content-Type", "application/json")
		js.rw.WriteHeader(http.StatusOK)
		js.rw.Write(encodedData)
	}
}
