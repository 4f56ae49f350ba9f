package httpapi

import (
	"net/http"
	"strconv"

	modclock "github.com/GoodbyeKittyy/modular-arithmetic-clock"
)

type binaryModRequest struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
	M int64 `json:"m"`
}

type powRequest struct {
	Base int64 `json:"base"`
	Exp  int64 `json:"exp"`
	M    int64 `json:"m"`
}

type gcdRequest struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
}

type inverseRequest struct {
	A int64 `json:"a"`
	M int64 `json:"m"`
}

type caesarRequest struct {
	Text    string `json:"text"`
	Shift   int    `json:"shift"`
	Decrypt bool   `json:"decrypt"`
}

type vigenereRequest struct {
	Text    string `json:"text"`
	Keyword string `json:"keyword"`
	Decrypt bool   `json:"decrypt"`
}

type rsaGenerateRequest struct {
	P int64 `json:"p"`
	Q int64 `json:"q"`
}

type keysPayload struct {
	N   int64 `json:"n"`
	E   int64 `json:"e"`
	D   int64 `json:"d"`
	Phi int64 `json:"phi"`
}

type rsaEncryptRequest struct {
	Message int64       `json:"message"`
	Keys    keysPayload `json:"keys"`
}

type rsaDecryptRequest struct {
	Ciphertext int64       `json:"ciphertext"`
	Keys       keysPayload `json:"keys"`
}

type crtRequest struct {
	Remainders []int64 `json:"remainders"`
	Moduli     []int64 `json:"moduli"`
}

type crtResponse struct {
	X int64 `json:"x"`
	M int64 `json:"m"`
}

type fermatRequest struct {
	A int64 `json:"a"`
	P int64 `json:"p"`
}

type fermatStepPayload struct {
	Exponent int64 `json:"exponent"`
	Result   int64 `json:"result"`
}

type fermatResponse struct {
	Result int64               `json:"result"`
	Steps  []fermatStepPayload `json:"steps"`
}

func (s *Server) handleModAdd(w http.ResponseWriter, r *http.Request) {
	var req binaryModRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := modclock.ModAdd(req.A, req.B, req.M)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, result)
}

func (s *Server) handleModSub(w http.ResponseWriter, r *http.Request) {
	var req binaryModRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := modclock.ModSub(req.A, req.B, req.M)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, result)
}

func (s *Server) handleModMul(w http.ResponseWriter, r *http.Request) {
	var req binaryModRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := modclock.ModMul(req.A, req.B, req.M)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, result)
}

func (s *Server) handleModPow(w http.ResponseWriter, r *http.Request) {
	var req powRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := modclock.ModPow(req.Base, req.Exp, req.M)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, result)
}

func (s *Server) handleGCD(w http.ResponseWriter, r *http.Request) {
	var req gcdRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeResult(w, modclock.GCD(req.A, req.B))
}

func (s *Server) handleModInverse(w http.ResponseWriter, r *http.Request) {
	var req inverseRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := modclock.ModInverse(req.A, req.M)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, result)
}

func (s *Server) handleIsPrime(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseInt(r.PathValue("n"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "n must be an integer")
		return
	}
	s.writeResult(w, modclock.IsPrime(n))
}

func (s *Server) handleCaesar(w http.ResponseWriter, r *http.Request) {
	var req caesarRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := modclock.CaesarCipher(req.Text, req.Shift, req.Decrypt)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, result)
}

func (s *Server) handleVigenere(w http.ResponseWriter, r *http.Request) {
	var req vigenereRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := modclock.VigenereCipher(req.Text, req.Keyword, req.Decrypt)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, result)
}

func (s *Server) handleRSAGenerate(w http.ResponseWriter, r *http.Request) {
	var req rsaGenerateRequest
	if !s.decode(w, r, &req) {
		return
	}
	keys, err := modclock.GenerateKeys(req.P, req.Q)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, keysPayload{N: keys.N, E: keys.E, D: keys.D, Phi: keys.Phi})
}

func (s *Server) handleRSAEncrypt(w http.ResponseWriter, r *http.Request) {
	var req rsaEncryptRequest
	if !s.decode(w, r, &req) {
		return
	}
	keys := &modclock.KeyPair{N: req.Keys.N, E: req.Keys.E, D: req.Keys.D, Phi: req.Keys.Phi}
	result, err := modclock.Encrypt(req.Message, keys)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, result)
}

func (s *Server) handleRSADecrypt(w http.ResponseWriter, r *http.Request) {
	var req rsaDecryptRequest
	if !s.decode(w, r, &req) {
		return
	}
	keys := &modclock.KeyPair{N: req.Keys.N, E: req.Keys.E, D: req.Keys.D, Phi: req.Keys.Phi}
	result, err := modclock.Decrypt(req.Ciphertext, keys)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, result)
}

func (s *Server) handleCRT(w http.ResponseWriter, r *http.Request) {
	var req crtRequest
	if !s.decode(w, r, &req) {
		return
	}
	solution, err := modclock.SolveCongruences(req.Remainders, req.Moduli)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeResult(w, crtResponse{X: solution.X, M: solution.M})
}

func (s *Server) handleFermat(w http.ResponseWriter, r *http.Request) {
	var req fermatRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := modclock.VerifyFermat(req.A, req.P)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	steps := make([]fermatStepPayload, 0, len(result.Steps))
	for _, step := range result.Steps {
		steps = append(steps, fermatStepPayload{Exponent: step.Exponent, Result: step.Result})
	}
	s.writeResult(w, fermatResponse{Result: result.Result, Steps: steps})
}
