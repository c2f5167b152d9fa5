// Package mastodontest runs an in-process Mastodon API good enough to drive
// the client, the pager and the CLI end to end.
package mastodontest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// DefaultPageSize mirrors the 40-account cap most instances apply to
// follower collections.
const DefaultPageSize = 40

type Account struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Acct        string `json:"acct"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
}

type List struct {
	ID      string
	Title   string
	Members []string
}

type relationship struct {
	ID         string `json:"id"`
	Following  bool   `json:"following"`
	Requested  bool   `json:"requested"`
	FollowedBy bool   `json:"followed_by"`
}

type Server struct {
	*httptest.Server

	// Token is the bearer token the server accepts. Empty disables auth.
	Token    string
	PageSize int

	mu        sync.Mutex
	host      string
	profile   string
	nextID    int
	me        string
	accounts  []*Account
	byID      map[string]*Account
	followers []string
	following []string
	requested map[string]bool
	approval  map[string]bool
	lists     []*List
	others    map[string][]string
	calls     map[string]int
	mutations []string
	failures  map[string]failure
}

type failure struct {
	page   int
	status int
}

func NewServer(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		PageSize:  DefaultPageSize,
		byID:      map[string]*Account{},
		requested: map[string]bool{},
		approval:  map[string]bool{},
		calls:     map[string]int{},
		failures:  map[string]failure{},
		others:    map[string][]string{},
	}

	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)

	parsed, err := url.Parse(s.URL)
	if err != nil {
		t.Fatalf("parse test server url: %v", err)
	}
	s.host = parsed.Hostname()
	s.profile = s.URL

	return s
}

// SetDomain changes the hostname local accounts are addressed by, so that a
// second server can stand in for a remote instance. Call it before adding
// accounts.
func (s *Server) SetDomain(domain string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.host = strings.ToLower(domain)
	s.profile = "https://" + s.host
}

// Host is the hostname local accounts live on.
func (s *Server) Host() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.host
}

// SetMe creates the authenticated account and returns its id.
func (s *Server) SetMe(username string) string {
	id := s.AddAccount(username, "")
	s.mu.Lock()
	s.me = id
	s.mu.Unlock()
	return id
}

// AddAccount registers an account. An empty host makes it local.
func (s *Server) AddAccount(username, host string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := strconv.Itoa(100 + s.nextID)
	account := &Account{ID: id, Username: username, DisplayName: strings.ToUpper(username[:1]) + username[1:]}
	if host == "" || host == s.host {
		account.Acct = username
		account.URL = s.profile + "/@" + username
	} else {
		account.Acct = username + "@" + host
		account.URL = "https://" + host + "/@" + username
	}

	s.accounts = append(s.accounts, account)
	s.byID[id] = account
	return id
}

func (s *Server) AddFollower(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.followers = append(s.followers, id)
}

func (s *Server) AddFollowing(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.following = append(s.following, id)
}

// RequireApproval makes follows of id stay pending.
func (s *Server) RequireApproval(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.approval[id] = true
}

func (s *Server) AddList(title string, members ...string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addListLocked(title, members...)
}

func (s *Server) addListLocked(title string, members ...string) string {
	s.nextID++
	id := strconv.Itoa(900 + s.nextID)
	s.lists = append(s.lists, &List{ID: id, Title: title, Members: append([]string(nil), members...)})
	return id
}

// AddFollowerOf makes follower follow an account other than the signed-in
// one.
func (s *Server) AddFollowerOf(target, follower string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.others[target+"/followers"] = append(s.others[target+"/followers"], follower)
}

// AddFollowingOf makes an account other than the signed-in one follow
// followed.
func (s *Server) AddFollowingOf(target, followed string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.others[target+"/following"] = append(s.others[target+"/following"], followed)
}

// FailPage makes the given page (1-based) of a collection ("followers",
// "following", "list") answer with status.
func (s *Server) FailPage(collection string, page int, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[collection] = failure{page: page, status: status}
}

// Calls counts requests by "METHOD kind", e.g. "GET lists" or
// "POST list_accounts".
func (s *Server) Calls(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[key]
}

// Mutations lists state-changing calls in order as "kind:accountID".
func (s *Server) Mutations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.mutations...)
}

func (s *Server) FollowingIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.following...)
}

func (s *Server) ListMembers(title string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, list := range s.lists {
		if list.Title == title {
			return append([]string(nil), list.Members...)
		}
	}
	return nil
}

func (s *Server) ListTitles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	titles := make([]string, 0, len(s.lists))
	for _, list := range s.lists {
		titles = append(titles, list.Title)
	}
	return titles
}

// Acct returns the handle of id as the server would print it.
func (s *Server) Acct(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.byID[id]
	if !ok {
		return ""
	}
	if strings.Contains(account.Acct, "@") {
		return account.Acct
	}
	return account.Acct + "@" + s.host
}

func (s *Server) router() http.Handler {
	r := gin.New()
	r.Use(s.count, s.auth)

	r.GET("/api/v1/accounts/:id", s.getAccount)
	r.GET("/api/v1/accounts/:id/:action", s.getCollection)
	r.POST("/api/v1/accounts/:id/:action", s.postAccountAction)
	r.GET("/api/v2/search", s.search)
	r.GET("/api/v1/lists", s.getLists)
	r.POST("/api/v1/lists", s.createList)
	r.GET("/api/v1/lists/:id/accounts", s.getListAccounts)
	r.POST("/api/v1/lists/:id/accounts", s.addListAccounts)
	r.DELETE("/api/v1/lists/:id/accounts", s.removeListAccounts)

	return r
}

func (s *Server) count(c *gin.Context) {
	s.mu.Lock()
	s.calls[c.Request.Method+" "+routeKind(c.Request.URL.Path)]++
	s.mu.Unlock()
	c.Next()
}

func (s *Server) auth(c *gin.Context) {
	if s.Token == "" {
		c.Next()
		return
	}
	if c.GetHeader("Authorization") != "Bearer "+s.Token {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "The access token is invalid"})
		return
	}
	c.Next()
}

func routeKind(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(parts) == 4 && parts[2] == "accounts":
		return parts[3]
	case len(parts) == 5 && parts[2] == "accounts":
		return parts[4]
	case len(parts) == 3 && parts[2] == "lists":
		return "lists"
	case len(parts) == 5 && parts[2] == "lists":
		return "list_accounts"
	case len(parts) == 3 && parts[2] == "search":
		return "search"
	default:
		return path
	}
}

func (s *Server) getAccount(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch c.Param("id") {
	case "verify_credentials":
		account, ok := s.byID[s.me]
		if !ok {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, account)
	case "lookup":
		account := s.findLocked(c.Query("acct"))
		if account == nil {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, account)
	case "relationships":
		rels := make([]relationship, 0)
		for _, id := range c.QueryArray("id[]") {
			if _, ok := s.byID[id]; !ok {
				continue
			}
			rels = append(rels, s.relationshipLocked(id))
		}
		c.JSON(http.StatusOK, rels)
	default:
		account, ok := s.byID[c.Param("id")]
		if !ok {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

func (s *Server) findLocked(acct string) *Account {
	acct = strings.TrimPrefix(strings.ToLower(acct), "@")
	user, host, _ := strings.Cut(acct, "@")
	for _, account := range s.accounts {
		if host == "" || host == s.host {
			if strings.EqualFold(account.Acct, user) {
				return account
			}
			continue
		}
		if strings.EqualFold(account.Acct, acct) {
			return account
		}
	}
	return nil
}

func (s *Server) relationshipLocked(id string) relationship {
	return relationship{
		ID:         id,
		Following:  contains(s.following, id),
		Requested:  s.requested[id],
		FollowedBy: contains(s.followers, id),
	}
}

func (s *Server) search(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]*Account, 0)
	if account := s.findLocked(c.Query("q")); account != nil {
		results = append(results, account)
	}
	c.JSON(http.StatusOK, gin.H{"accounts": results, "statuses": []any{}, "hashtags": []any{}})
}

func (s *Server) getCollection(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Param("id") != s.me {
		if _, ok := s.byID[c.Param("id")]; !ok {
			notFound(c)
			return
		}
		s.page(c, c.Param("action"), s.others[c.Param("id")+"/"+c.Param("action")])
		return
	}

	switch c.Param("action") {
	case "followers":
		s.page(c, "followers", s.followers)
	case "following":
		s.page(c, "following", s.following)
	default:
		notFound(c)
	}
}

func (s *Server) postAccountAction(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	if _, ok := s.byID[id]; !ok {
		notFound(c)
		return
	}

	switch c.Param("action") {
	case "follow":
		s.mutations = append(s.mutations, "follow:"+id)
		if !contains(s.following, id) {
			if s.approval[id] {
				s.requested[id] = true
			} else {
				s.following = append(s.following, id)
			}
		}
	case "unfollow":
		s.mutations = append(s.mutations, "unfollow:"+id)
		s.following = remove(s.following, id)
		delete(s.requested, id)
		for _, list := range s.lists {
			list.Members = remove(list.Members, id)
		}
	default:
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, s.relationshipLocked(id))
}

func (s *Server) getLists(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]gin.H, 0, len(s.lists))
	for _, list := range s.lists {
		out = append(out, gin.H{"id": list.ID, "title": list.Title, "replies_policy": "list"})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createList(c *gin.Context) {
	var body struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed: Title can't be blank"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.addListLocked(body.Title)
	s.mutations = append(s.mutations, "create_list:"+id)
	c.JSON(http.StatusOK, gin.H{"id": id, "title": body.Title})
}

func (s *Server) listLocked(id string) *List {
	for _, list := range s.lists {
		if list.ID == id {
			return list
		}
	}
	return nil
}

func (s *Server) getListAccounts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.listLocked(c.Param("id"))
	if list == nil {
		notFound(c)
		return
	}
	s.page(c, "list", list.Members)
}

func (s *Server) addListAccounts(c *gin.Context) {
	var body struct {
		AccountIDs []string `json:"account_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.listLocked(c.Param("id"))
	if list == nil {
		notFound(c)
		return
	}
	for _, id := range body.AccountIDs {
		if !contains(s.following, id) {
			notFound(c)
			return
		}
		if contains(list.Members, id) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed: Account has already been taken"})
			return
		}
	}
	for _, id := range body.AccountIDs {
		s.mutations = append(s.mutations, "list_add:"+id)
		list.Members = append(list.Members, id)
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) removeListAccounts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.listLocked(c.Param("id"))
	if list == nil {
		notFound(c)
		return
	}
	for _, id := range c.QueryArray("account_ids[]") {
		s.mutations = append(s.mutations, "list_remove:"+id)
		list.Members = remove(list.Members, id)
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) page(c *gin.Context, collection string, ids []string) {
	size := s.PageSize
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit < size {
		size = limit
	}

	start := 0
	if cursor := c.Query("max_id"); cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad cursor"})
			return
		}
		start = parsed
	}

	if fail, ok := s.failures[collection]; ok && fail.page == start/size+1 {
		c.JSON(fail.status, gin.H{"error": "upstream failure"})
		return
	}

	if start > len(ids) {
		start = len(ids)
	}
	end := start + size
	if end > len(ids) {
		end = len(ids)
	}

	out := make([]*Account, 0, end-start)
	for _, id := range ids[start:end] {
		out = append(out, s.byID[id])
	}

	if end < len(ids) {
		next := *c.Request.URL
		query := next.Query()
		query.Set("max_id", strconv.Itoa(end))
		next.RawQuery = query.Encode()
		prev := fmt.Sprintf("%s?min_id=%d", c.Request.URL.Path, start)
		c.Header("Link", fmt.Sprintf(`<%s%s>; rel="next", <%s%s>; rel="prev"`, s.URL, next.RequestURI(), s.URL, prev))
	}

	c.JSON(http.StatusOK, out)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
