// Package templates renders the server-side HTML pages: the public wheel
// landing page and the admin login and dashboard pages.
package templates

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log"

	"github.com/luckyspin/spinwheel-go/internal/domain/wheel"
)

// wheelSegment carries the precomputed SVG geometry for one prize segment.
type wheelSegment struct {
	Path       string
	Color      string
	Icon       string
	Name       string
	LabelX     float64
	LabelY     float64
	LabelAngle float64
}

type wheelPageData struct {
	Segments     []wheelSegment
	PrizesJSON   template.JS
	MinRotation  float64
	RotationSpan float64
	SegmentAngle float64
}

var wheelPageTemplate = template.Must(template.New("wheelPage").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Spin &amp; Win</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body { font-family: Helvetica, Arial, sans-serif; background: linear-gradient(135deg, #1e1b4b, #4c1d95); min-height: 100vh; display: flex; flex-direction: column; align-items: center; justify-content: center; color: #fff; }
    h1 { margin-bottom: 8px; font-size: 2rem; }
    p.tagline { margin-bottom: 24px; color: #c4b5fd; }
    .wheel-wrap { position: relative; width: 320px; height: 320px; }
    .pointer { position: absolute; top: -14px; left: 50%; transform: translateX(-50%); width: 0; height: 0; border-left: 14px solid transparent; border-right: 14px solid transparent; border-top: 24px solid #facc15; z-index: 2; }
    svg.wheel { width: 100%; height: 100%; border-radius: 50%; box-shadow: 0 0 0 8px #312e81, 0 8px 30px rgba(0,0,0,.5); transition: transform 4s cubic-bezier(0.17, 0.67, 0.12, 0.99); }
    .spin-btn { margin-top: 28px; padding: 14px 48px; font-size: 1.1rem; font-weight: bold; color: #1e1b4b; background: #facc15; border: none; border-radius: 999px; cursor: pointer; }
    .spin-btn:disabled { opacity: .5; cursor: not-allowed; }
    .modal { display: none; position: fixed; inset: 0; background: rgba(0,0,0,.7); align-items: center; justify-content: center; z-index: 10; }
    .modal.open { display: flex; }
    .modal-card { background: #fff; color: #111; border-radius: 12px; padding: 28px; width: 90%; max-width: 400px; text-align: center; }
    .modal-card h2 { margin-bottom: 12px; }
    .modal-card input { width: 100%; padding: 10px; margin: 6px 0; border: 1px solid #d1d5db; border-radius: 6px; font-size: 1rem; }
    .modal-card button { width: 100%; margin-top: 14px; padding: 12px; font-size: 1rem; font-weight: bold; color: #fff; background: #7c3aed; border: none; border-radius: 8px; cursor: pointer; }
    .field-errors { color: #dc2626; font-size: .85rem; text-align: left; margin-top: 8px; }
    .prize-banner { font-size: 2.4rem; margin: 10px 0; }
  </style>
</head>
<body>
  <h1>Spin &amp; Win</h1>
  <p class="tagline">One free spin. Real prizes.</p>

  <div class="wheel-wrap">
    <div class="pointer"></div>
    <svg class="wheel" id="wheel" viewBox="0 0 100 100">
      <g transform="rotate(-90 50 50)">
        {{range .Segments}}<path d="{{.Path}}" fill="{{.Color}}" stroke="#fff" stroke-width="0.4"></path>
        {{end}}
        {{range .Segments}}<text x="{{.LabelX}}" y="{{.LabelY}}" transform="rotate({{.LabelAngle}} {{.LabelX}} {{.LabelY}})" font-size="4.2" fill="#fff" text-anchor="middle" dominant-baseline="middle">{{.Icon}} {{.Name}}</text>
        {{end}}
      </g>
    </svg>
  </div>

  <button class="spin-btn" id="spinBtn">SPIN</button>

  <div class="modal" id="leadModal">
    <div class="modal-card">
      <h2>You won!</h2>
      <div class="prize-banner" id="prizeBanner"></div>
      <p>Enter your details to claim your prize.</p>
      <form id="leadForm">
        <input type="email" id="email" placeholder="Email address" required>
        <input type="tel" id="phone" placeholder="Phone number" required>
        <input type="text" id="location" placeholder="City, Country" required>
        <div class="field-errors" id="fieldErrors"></div>
        <button type="submit">Claim prize</button>
      </form>
    </div>
  </div>

  <div class="modal" id="successModal">
    <div class="modal-card">
      <h2>🎉 Congratulations!</h2>
      <p id="successMessage"></p>
    </div>
  </div>

  <script>
    var prizes = {{.PrizesJSON}};
    var minRotation = {{.MinRotation}};
    var rotationSpan = {{.RotationSpan}};
    var segmentAngle = {{.SegmentAngle}};

    var sessionId = localStorage.getItem('sessionId');
    if (!sessionId) {
      sessionId = 'session_' + Date.now().toString(36) + Math.random().toString(36).slice(2, 10);
      localStorage.setItem('sessionId', sessionId);
    }

    var pageLoadedAt = Date.now();
    function beacon(body) {
      fetch('/api/v1/tracking', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify(body),
        keepalive: true
      }).catch(function () {});
    }
    beacon({ sessionId: sessionId, page: location.pathname, timestamp: new Date().toISOString() });
    window.addEventListener('pagehide', function () {
      var payload = JSON.stringify({
        sessionId: sessionId,
        page: location.pathname,
        timestamp: new Date().toISOString(),
        duration: Math.round((Date.now() - pageLoadedAt) / 1000)
      });
      navigator.sendBeacon('/api/v1/tracking', new Blob([payload], { type: 'application/json' }));
    });

    var wheel = document.getElementById('wheel');
    var spinBtn = document.getElementById('spinBtn');
    var totalRotation = 0;
    var wonPrize = '';

    function resolvePrize(rotation) {
      var normalized = ((rotation % 360) + 360) % 360;
      var index = Math.floor((360 - normalized + segmentAngle / 2) / segmentAngle) % prizes.length;
      return prizes[index];
    }

    spinBtn.addEventListener('click', function () {
      spinBtn.disabled = true;
      totalRotation += minRotation + Math.random() * rotationSpan;
      wheel.style.transform = 'rotate(' + totalRotation + 'deg)';

      setTimeout(function () {
        var prize = resolvePrize(totalRotation);
        wonPrize = prize.icon + ' ' + prize.name;
        document.getElementById('prizeBanner').textContent = wonPrize;
        document.getElementById('leadModal').classList.add('open');
      }, 4200);
    });

    document.getElementById('leadForm').addEventListener('submit', function (e) {
      e.preventDefault();
      var errBox = document.getElementById('fieldErrors');
      errBox.textContent = '';

      var body = {
        email: document.getElementById('email').value,
        phone: document.getElementById('phone').value,
        location: document.getElementById('location').value,
        sessionId: sessionId,
        prize: wonPrize
      };

      var submit = function () {
        fetch('/api/v1/users', {
          method: 'POST',
          headers: { 'Content-Type': 'application/json' },
          body: JSON.stringify(body)
        }).then(function (res) {
          return res.json().then(function (data) { return { status: res.status, data: data }; });
        }).then(function (r) {
          if (r.status === 201) {
            document.getElementById('leadModal').classList.remove('open');
            document.getElementById('successMessage').textContent =
              'You won ' + wonPrize + '! We will contact you shortly.';
            document.getElementById('successModal').classList.add('open');
          } else if (r.status === 409) {
            errBox.textContent = 'This email has already claimed a prize.';
          } else if (r.data && r.data.fields) {
            errBox.innerHTML = r.data.fields.map(function (f) { return f.message; }).join('<br>');
          } else {
            errBox.textContent = 'Something went wrong. Please try again.';
          }
        }).catch(function () {
          errBox.textContent = 'Network error. Please try again.';
        });
      };

      if (navigator.geolocation) {
        navigator.geolocation.getCurrentPosition(function (pos) {
          body.coordinates = { latitude: pos.coords.latitude, longitude: pos.coords.longitude };
          submit();
        }, submit, { timeout: 3000 });
      } else {
        submit();
      }
    });
  </script>
</body>
</html>`))

// WheelPage renders the public landing page with the prize wheel geometry
// computed server-side.
func WheelPage() string {
	segments := make([]wheelSegment, len(wheel.Prizes))
	for i, p := range wheel.Prizes {
		x, y, angle := wheel.LabelPosition(i, 0.65)
		segments[i] = wheelSegment{
			Path:       wheel.SegmentPath(i),
			Color:      p.Color,
			Icon:       p.Icon,
			Name:       p.Name,
			LabelX:     x,
			LabelY:     y,
			LabelAngle: angle,
		}
	}

	prizesJSON, err := json.Marshal(wheel.Prizes)
	if err != nil {
		log.Printf("ERROR: Failed to marshal prize catalog: %v", err)
		prizesJSON = []byte("[]")
	}

	data := wheelPageData{
		Segments:     segments,
		PrizesJSON:   template.JS(prizesJSON),
		MinRotation:  wheel.MinRotation,
		RotationSpan: wheel.RotationSpan,
		SegmentAngle: wheel.SegmentAngle(),
	}

	var buf bytes.Buffer
	if err := wheelPageTemplate.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute wheel page template: %v", err)
		return ""
	}
	return buf.String()
}
