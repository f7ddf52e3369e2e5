package render

// Leaflet comes from a CDN so the page stays a single file. Marker
// radius grows with the logarithm of transferred bytes, hue walks
// from green to red following the request order.
const mapTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://unpkg.com/leaflet@1.7.1/dist/leaflet.css">
  <script src="https://unpkg.com/leaflet@1.7.1/dist/leaflet.js"></script>
  <style>
    html, body, #map { height: 100%; margin: 0; }
    .legend { background: white; padding: 0.5em; font: 12px sans-serif; }
  </style>
</head>
<body>
  <div id="map"></div>
  <script>
    var data = {{ .Payload }};

    var map = L.map("map").setView([data.origin.latitude, data.origin.longitude], 3);

    L.tileLayer("https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", {
      attribution: "&copy; OpenStreetMap contributors"
    }).addTo(map);

    L.circleMarker([data.origin.latitude, data.origin.longitude], {
      radius: 6,
      color: "#000",
      fillOpacity: 1.0
    }).addTo(map).bindPopup("origin");

    var total = Math.max(data.sites.length, 1);

    data.sites.forEach(function (site) {
      var hue = 120 - Math.round(120 * site.order / total);
      var color = "hsl(" + hue + ", 80%, 40%)";
      var radius = 4 + 2 * Math.log10(Math.max(site.bytes, 1));

      L.polyline(
        [[data.origin.latitude, data.origin.longitude],
         [site.latitude, site.longitude]],
        { color: color, weight: 1, opacity: 0.6 }
      ).addTo(map);

      L.circleMarker([site.latitude, site.longitude], {
        radius: radius,
        color: color,
        fillOpacity: 0.7
      }).addTo(map).bindPopup(
        site.host + " (" + site.addr + ")<br>" +
        site.bytes + " bytes, " + site.requests + " requests"
      );
    });
  </script>
</body>
</html>
`
